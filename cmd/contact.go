package main

import (
	"context"
	"domainsync/internal/config"
	"domainsync/pkg/domain"
	"domainsync/pkg/logger"
	"domainsync/pkg/storage"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// contactFlag binds a command line flag to a contact field.
type contactFlag struct {
	name  string
	usage string
	field func(c *domain.Contact) **string
}

//nolint: gochecknoglobals
var contactFlags = []contactFlag{
	{"address-line-1", "First address line", func(c *domain.Contact) **string { return &c.AddressLine1 }},
	{"address-line-2", "Second address line", func(c *domain.Contact) **string { return &c.AddressLine2 }},
	{"city", "City", func(c *domain.Contact) **string { return &c.City }},
	{"contact-type", "Contact type (e.g., PERSON, COMPANY)", func(c *domain.Contact) **string { return &c.ContactType }},
	{"country-code", "Two letter country code", func(c *domain.Contact) **string { return &c.CountryCode }},
	{"email", "Email address", func(c *domain.Contact) **string { return &c.Email }},
	{"fax", "Fax number", func(c *domain.Contact) **string { return &c.Fax }},
	{"first-name", "First name", func(c *domain.Contact) **string { return &c.FirstName }},
	{"last-name", "Last name", func(c *domain.Contact) **string { return &c.LastName }},
	{"organization-name", "Organization name", func(c *domain.Contact) **string { return &c.OrganizationName }},
	{"phone-number", "Phone number (e.g., +44.2071234567)", func(c *domain.Contact) **string { return &c.PhoneNumber }},
	{"state", "State or province", func(c *domain.Contact) **string { return &c.State }},
	{"zip-code", "Zip or postal code", func(c *domain.Contact) **string { return &c.ZipCode }},
}

// contactFromFlags builds a contact from the flags that were set. Unset flags
// leave the field absent; a flag set to "" stores an empty value, except for
// the enumerated fields which Contact.Validate rejects.
func contactFromFlags(flags *pflag.FlagSet) (domain.Contact, error) {
	var contact domain.Contact
	for _, f := range contactFlags {
		if !flags.Changed(f.name) {
			continue
		}
		value, _ := flags.GetString(f.name)
		*f.field(&contact) = domain.String(value)
	}
	if err := contact.Validate(); err != nil {
		return domain.Contact{}, err
	}

	return contact, nil
}

// contactKeyArg accepts "default" or a domain name.
func contactKeyArg(arg string) (string, error) {
	if arg == storage.DefaultContactKey {
		return arg, nil
	}

	name, err := domain.NormalizeName(arg)
	if err != nil {
		return "", fmt.Errorf("contact key must be a domain name or %q: %w", storage.DefaultContactKey, err)
	}

	return name, nil
}

func printJSON(ctx context.Context, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Fatal(ctx, "could not encode output", zap.Error(err))
	}

	fmt.Println(string(out)) //nolint: forbidigo
}

// contactCommand constructs the 'contact' subcommand that manages the expected
// contacts: one per domain name plus the "default" fallback.
func contactCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manages the expected domain contacts",
	}

	setCmd := &cobra.Command{
		Use:   "set <domain|default>",
		Short: "Stores the expected contact for a domain or the default contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			key, err := contactKeyArg(args[0])
			if err != nil {
				return err
			}

			contact, err := contactFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.UpsertContact(ctx, key, contact); err != nil {
				return fmt.Errorf("could not store contact: %w", err)
			}
			logger.Info(ctx, "contact stored", zap.String("key", key))
			printJSON(ctx, storage.ContactRecord{Key: key, Contact: contact})

			return nil
		},
	}
	for _, f := range contactFlags {
		setCmd.Flags().String(f.name, "", f.usage)
	}

	getCmd := &cobra.Command{
		Use:   "get [domain|default]",
		Short: "Prints one expected contact, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if len(args) == 0 {
				records, err := strg.Contacts(ctx)
				if err != nil {
					return fmt.Errorf("could not list contacts: %w", err)
				}
				printJSON(ctx, records)

				return nil
			}

			key, err := contactKeyArg(args[0])
			if err != nil {
				return err
			}
			contact, err := strg.ContactByKey(ctx, key)
			if err != nil {
				return fmt.Errorf("could not get contact: %w", err)
			}
			if contact == nil {
				return fmt.Errorf("no contact stored for %q", key)
			}
			printJSON(ctx, storage.ContactRecord{Key: key, Contact: *contact})

			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <domain|default>",
		Short: "Removes an expected contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			key, err := contactKeyArg(args[0])
			if err != nil {
				return err
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			deleted, err := strg.DeleteContact(ctx, key)
			if err != nil {
				return fmt.Errorf("could not delete contact: %w", err)
			}
			logger.Info(ctx, "contact deleted", zap.String("key", key), zap.Bool("existed", deleted))

			return nil
		},
	}

	cmd.AddCommand(setCmd, getCmd, deleteCmd)

	return cmd
}
