package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/integra/health-sport-site/internal/core/domain"
	"github.com/integra/health-sport-site/internal/infrastructure/db/flatfile"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var contactsOutput string

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Inspect and moderate stored contact submissions",
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored contacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo := flatfile.NewContactRepository(cfg.Data.ContactsFile, log)
		return writeContacts(cmd.OutOrStdout(), repo.List(cmd.Context()), contactsOutput)
	},
}

var contactsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored contact by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := flatfile.NewContactRepository(cfg.Data.ContactsFile, log)
		removed, err := repo.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("contact %s: %w", args[0], domain.ErrContactNotFound)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	contactsListCmd.Flags().StringVarP(&contactsOutput, "output", "o", outputTable, "output format: table, json or yaml")
	contactsCmd.AddCommand(contactsListCmd, contactsDeleteCmd)
}

// contactRecord is the yaml shape of a contact; json reuses domain.Contact.
type contactRecord struct {
	ID      string `yaml:"id"`
	Date    string `yaml:"date"`
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Message string `yaml:"message"`
}

func writeContacts(w io.Writer, contacts []domain.Contact, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(contacts)
	case outputYAML:
		records := make([]contactRecord, 0, len(contacts))
		for _, c := range contacts {
			records = append(records, contactRecord{
				ID:      c.ID,
				Date:    c.SubmittedAt,
				Name:    c.Name,
				Email:   c.Email,
				Phone:   c.Phone,
				Message: c.Message,
			})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case outputTable, "":
		t := table.New().Headers("ID", "DATE", "NAME", "EMAIL", "PHONE", "MESSAGE")
		for _, c := range contacts {
			t.Row(c.ID, c.SubmittedAt, c.Name, c.Email, c.Phone, oneLine(c.Message, 40))
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func oneLine(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > limit {
		return string(r[:limit-1]) + "…"
	}
	return s
}
