package handler

import "github.com/integra/health-sport-site/internal/core/domain"

// contactForm is the public contact form. Every field is optional; missing
// fields bind as empty strings.
type contactForm struct {
	Name    string `form:"name"    json:"name"`
	Email   string `form:"email"   json:"email"`
	Phone   string `form:"phone"   json:"phone"`
	Message string `form:"message" json:"message"`
}

func (f contactForm) fields() domain.ContactFields {
	return domain.ContactFields{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Message: f.Message,
	}
}

// loginForm doubles as the logout form: a non-empty Logout wins over the
// credentials.
type loginForm struct {
	User   string `form:"user"   json:"user"   validate:"required"`
	Pass   string `form:"pass"   json:"pass"   validate:"required"`
	Logout string `form:"logout" json:"logout"`
}
