package main

import (
	"testing"

	"domainsync/pkg/domain"
	"domainsync/pkg/storage"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestContactFromFlags(t *testing.T) {
	flags := pflag.NewFlagSet("set", pflag.ContinueOnError)
	for _, f := range contactFlags {
		flags.String(f.name, "", f.usage)
	}
	require.NoError(t, flags.Parse([]string{"--first-name", "Ada", "--country-code", "GB", "--fax", ""}))

	contact, err := contactFromFlags(flags)
	require.NoError(t, err)
	require.Equal(t, domain.Contact{
		FirstName:   domain.String("Ada"),
		CountryCode: domain.String("GB"),
		Fax:         domain.String(""),
	}, contact)
}

func TestContactFromFlags_EmptyEnumeratedField(t *testing.T) {
	for _, name := range []string{"contact-type", "country-code"} {
		t.Run(name, func(t *testing.T) {
			flags := pflag.NewFlagSet("set", pflag.ContinueOnError)
			for _, f := range contactFlags {
				flags.String(f.name, "", f.usage)
			}
			require.NoError(t, flags.Parse([]string{"--first-name", "Ada", "--" + name, ""}))

			_, err := contactFromFlags(flags)
			require.ErrorIs(t, err, domain.ErrInvalidContact)
		})
	}
}

func TestContactFlags_CoverEveryField(t *testing.T) {
	require.Len(t, contactFlags, len(domain.ContactFieldNames()))

	var c domain.Contact
	for _, f := range contactFlags {
		*f.field(&c) = domain.String(f.name)
	}
	for _, f := range contactFlags {
		require.Equal(t, f.name, **f.field(&c))
	}
}

func TestContactKeyArg(t *testing.T) {
	key, err := contactKeyArg(storage.DefaultContactKey)
	require.NoError(t, err)
	require.Equal(t, storage.DefaultContactKey, key)

	key, err = contactKeyArg("Example.COM.")
	require.NoError(t, err)
	require.Equal(t, "example.com", key)

	_, err = contactKeyArg("not a domain")
	require.ErrorIs(t, err, domain.ErrInvalidName)
}
