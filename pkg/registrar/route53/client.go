// Package route53 provides a registrar.Client implementation backed by the
// Amazon Route 53 Domains API.
package route53

import (
	"context"
	"domainsync/pkg/domain"
	"domainsync/pkg/registrar"
	"domainsync/pkg/serrors"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53domains"
	"github.com/aws/aws-sdk-go-v2/service/route53domains/types"
	"github.com/aws/smithy-go"
	"golang.org/x/time/rate"
)

const (
	// DefaultPageSize is the number of domains requested per ListDomains page.
	DefaultPageSize = 100
	// DefaultRegion is the only region serving the Route 53 Domains API.
	DefaultRegion = "us-east-1"
)

// API is the subset of the Route 53 Domains client used by Client.
// *route53domains.Client satisfies it.
type API interface {
	ListDomains(ctx context.Context,
		params *route53domains.ListDomainsInput,
		optFns ...func(*route53domains.Options)) (*route53domains.ListDomainsOutput, error)
	GetDomainDetail(ctx context.Context,
		params *route53domains.GetDomainDetailInput,
		optFns ...func(*route53domains.Options)) (*route53domains.GetDomainDetailOutput, error)
	UpdateDomainContact(ctx context.Context,
		params *route53domains.UpdateDomainContactInput,
		optFns ...func(*route53domains.Options)) (*route53domains.UpdateDomainContactOutput, error)
}

// Options configure paging and client-side throttling.
type Options struct {
	// PageSize is the MaxItems value sent with each ListDomains request.
	// Defaults to DefaultPageSize.
	PageSize int
	// RequestsPerSecond caps the rate of API calls made by this client. Zero
	// or a negative value disables the limit.
	RequestsPerSecond float64
}

// Client talks to Route 53 Domains and fulfills the registrar.Client
// interface. It is safe for concurrent use.
type Client struct {
	api      API
	pageSize int32
	limiter  *rate.Limiter
}

// Ensure Client conforms to the registrar.Client interface at compile time.
var _ registrar.Client = (*Client)(nil)

// New constructs a Client around an existing API implementation.
func New(api API, opts Options) *Client {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &Client{
		api:      api,
		pageSize: int32(pageSize), //nolint: gosec
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// NewFromConfig loads the default AWS configuration (environment, shared
// config files, instance roles) for region and constructs a Client.
func NewFromConfig(ctx context.Context, region string, opts Options) (*Client, error) {
	if region == "" {
		region = DefaultRegion
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	return New(route53domains.NewFromConfig(cfg), opts), nil
}

// ListRegisteredDomains drains every ListDomains page. Cancellation is checked
// before each page, and any failure discards the pages read so far.
func (c *Client) ListRegisteredDomains(ctx context.Context) ([]domain.Registration, error) {
	var (
		out    []domain.Registration
		seen   = make(map[string]struct{})
		marker *string
	)

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("listing domains interrupted: %w", err)
		}

		resp, err := c.api.ListDomains(ctx, &route53domains.ListDomainsInput{
			Marker:   marker,
			MaxItems: aws.Int32(c.pageSize),
		})
		if err != nil {
			return nil, wrapError("ListDomains", err)
		}

		for _, d := range resp.Domains {
			name := aws.ToString(d.DomainName)
			if name == "" {
				return nil, &registrar.Error{Op: "ListDomains", Message: "domain without a name in listing"}
			}
			if d.Expiry == nil {
				return nil, &registrar.Error{
					Op:      "ListDomains",
					Message: fmt.Sprintf("domain %q listed without an expiry", name),
				}
			}
			if _, ok := seen[name]; ok {
				return nil, serrors.With(serrors.ErrConflict, "domain %q listed twice", name)
			}
			seen[name] = struct{}{}

			out = append(out, domain.Registration{
				DomainName: name,
				// the snapshot store keeps microsecond precision
				Expiry:       d.Expiry.UTC().Truncate(time.Microsecond),
				AutoRenew:    aws.ToBool(d.AutoRenew),
				TransferLock: aws.ToBool(d.TransferLock),
			})
		}

		if aws.ToString(resp.NextPageMarker) == "" {
			return out, nil
		}
		marker = resp.NextPageMarker
	}
}

// GetDomainContacts fetches the domain detail and returns its three contacts.
func (c *Client) GetDomainContacts(ctx context.Context, domainName string) (domain.DomainContacts, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.DomainContacts{}, fmt.Errorf("get domain detail interrupted: %w", err)
	}

	resp, err := c.api.GetDomainDetail(ctx, &route53domains.GetDomainDetailInput{
		DomainName: aws.String(domainName),
	})
	if err != nil {
		return domain.DomainContacts{}, wrapError("GetDomainDetail", err)
	}

	return domain.DomainContacts{
		Admin:      toContact(resp.AdminContact),
		Registrant: toContact(resp.RegistrantContact),
		Tech:       toContact(resp.TechContact),
	}, nil
}

// SetDomainContacts updates the admin, registrant and tech contacts of a domain
// in one UpdateDomainContact call.
func (c *Client) SetDomainContacts(ctx context.Context, domainName string, contacts domain.DomainContacts) error {
	for _, contact := range []domain.Contact{contacts.Admin, contacts.Registrant, contacts.Tech} {
		if err := contact.Validate(); err != nil {
			rErr := &registrar.Error{Op: "UpdateDomainContact", Message: err.Error(), Err: err}

			return serrors.Wrap(serrors.ErrBadRequest, rErr, "contact cannot be stored by the registrar")
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("update domain contact interrupted: %w", err)
	}

	_, err := c.api.UpdateDomainContact(ctx, &route53domains.UpdateDomainContactInput{
		DomainName:        aws.String(domainName),
		AdminContact:      toContactDetail(contacts.Admin),
		RegistrantContact: toContactDetail(contacts.Registrant),
		TechContact:       toContactDetail(contacts.Tech),
	})
	if err != nil {
		return wrapError("UpdateDomainContact", err)
	}

	return nil
}

// throttlingCodes are the provider error codes reported when a caller exceeds
// the Route 53 Domains request or operation limits.
//
//nolint: gochecknoglobals
var throttlingCodes = map[string]struct{}{
	"ThrottlingException":      {},
	"TooManyRequestsException": {},
	"RequestLimitExceeded":     {},
	"OperationLimitExceeded":   {},
}

// unavailableCodes are reported when the provider itself is failing.
//
//nolint: gochecknoglobals
var unavailableCodes = map[string]struct{}{
	"ServiceUnavailable":          {},
	"ServiceUnavailableException": {},
	"InternalFailure":             {},
}

// wrapError converts an SDK error into a *registrar.Error carrying the provider
// code and message. Throttling, provider outages and deadlines are additionally
// tagged with a temporary serrors kind.
func wrapError(op string, err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		rErr := &registrar.Error{Op: op, Err: err}
		if errors.Is(err, context.DeadlineExceeded) {
			return serrors.Wrap(serrors.ErrTimeout, rErr, "registrar timed out")
		}

		return rErr
	}

	rErr := &registrar.Error{
		Op:      op,
		Code:    apiErr.ErrorCode(),
		Message: apiErr.ErrorMessage(),
		Err:     err,
	}
	if _, ok := throttlingCodes[rErr.Code]; ok {
		return serrors.Wrap(serrors.ErrRateLimited, rErr, "registrar throttled")
	}
	if _, ok := unavailableCodes[rErr.Code]; ok {
		return serrors.Wrap(serrors.ErrUnavailable, rErr, "registrar unavailable")
	}

	return rErr
}

func enumPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func toContact(d *types.ContactDetail) domain.Contact {
	if d == nil {
		return domain.Contact{}
	}

	return domain.Contact{
		AddressLine1:     d.AddressLine1,
		AddressLine2:     d.AddressLine2,
		City:             d.City,
		ContactType:      enumPtr(string(d.ContactType)),
		CountryCode:      enumPtr(string(d.CountryCode)),
		Email:            d.Email,
		Fax:              d.Fax,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		OrganizationName: d.OrganizationName,
		PhoneNumber:      d.PhoneNumber,
		State:            d.State,
		ZipCode:          d.ZipCode,
	}
}

func toContactDetail(c domain.Contact) *types.ContactDetail {
	return &types.ContactDetail{
		AddressLine1:     c.AddressLine1,
		AddressLine2:     c.AddressLine2,
		City:             c.City,
		ContactType:      types.ContactType(aws.ToString(c.ContactType)),
		CountryCode:      types.CountryCode(aws.ToString(c.CountryCode)),
		Email:            c.Email,
		Fax:              c.Fax,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		OrganizationName: c.OrganizationName,
		PhoneNumber:      c.PhoneNumber,
		State:            c.State,
		ZipCode:          c.ZipCode,
	}
}
