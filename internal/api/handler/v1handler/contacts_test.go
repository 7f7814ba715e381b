package v1handler_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"domainsync/pkg/domain"
	"domainsync/pkg/serrors"
	"domainsync/pkg/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListContacts(t *testing.T) {
	f := newAPIFixture(t)
	f.store.EXPECT().Contacts(gomock.Any()).Return(nil, nil)

	rec := f.do(http.MethodGet, "/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetContact(t *testing.T) {
	f := newAPIFixture(t)
	contact := domain.Contact{Email: domain.String("ops@example.com"), Fax: domain.String("")}
	f.store.EXPECT().ContactByKey(gomock.Any(), "default").Return(&contact, nil)

	rec := f.do(http.MethodGet, "/contacts/default", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"key":"default","contact":{"email":"ops@example.com","fax":""}}`, rec.Body.String())
}

func TestGetContact_NotFound(t *testing.T) {
	f := newAPIFixture(t)
	f.store.EXPECT().ContactByKey(gomock.Any(), "a.com").Return(nil, nil)

	rec := f.do(http.MethodGet, "/contacts/a.com", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"contact not found"}`, rec.Body.String())
}

func TestPutContact(t *testing.T) {
	f := newAPIFixture(t)
	want := domain.Contact{
		FirstName:   domain.String("Ada"),
		CountryCode: domain.String("GB"),
		Fax:         domain.String(""),
	}
	f.store.EXPECT().UpsertContact(gomock.Any(), "a.com", want).Return(nil)

	rec := f.do(http.MethodPut, "/contacts/a.com", `{"firstName":"Ada","countryCode":"GB","fax":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"key":"a.com","contact":{"firstName":"Ada","countryCode":"GB","fax":""}}`, rec.Body.String())
}

func TestPutContact_InvalidBody(t *testing.T) {
	tests := map[string]string{
		"not json":      `{`,
		"unknown field": `{"nickname":"ada"}`,
		"wrong type":    `{"firstName":1}`,
		"too large":     `{"firstName":"` + strings.Repeat("a", 70<<10) + `"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			f := newAPIFixture(t)

			rec := f.do(http.MethodPut, "/contacts/a.com", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), serrors.ErrBadRequest.Error())
		})
	}
}

func TestPutContact_EmptyEnumeratedField(t *testing.T) {
	for _, body := range []string{`{"firstName":"Ada","contactType":""}`, `{"countryCode":""}`} {
		t.Run(body, func(t *testing.T) {
			f := newAPIFixture(t)

			rec := f.do(http.MethodPut, "/contacts/a.com", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "must be omitted rather than empty")
		})
	}
}

func TestPutContact_TooLongKey(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPut, "/contacts/"+strings.Repeat("a", 254), `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteContact(t *testing.T) {
	f := newAPIFixture(t)
	f.store.EXPECT().DeleteContact(gomock.Any(), storage.DefaultContactKey).Return(true, nil)
	f.store.EXPECT().DeleteContact(gomock.Any(), "gone.com").Return(false, nil)
	f.store.EXPECT().DeleteContact(gomock.Any(), "err.com").Return(false, errors.New("db down"))

	require.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/contacts/default", "").Code)
	require.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/contacts/gone.com", "").Code)
	require.Equal(t, http.StatusInternalServerError, f.do(http.MethodDelete, "/contacts/err.com", "").Code)
}
