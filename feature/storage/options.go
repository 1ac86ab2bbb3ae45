package storage

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SortDirection orders list results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ListOptions configures list and search operations. All fields are optional;
// zero values are left out of the request.
type ListOptions struct {
	// Limit caps the number of results. Pairs with Offset.
	Limit int `json:"limit,omitempty"`
	// Offset skips results. Pairs with Limit.
	Offset int `json:"offset,omitempty"`
	// Page selects a 1-based page. Pairs with Size.
	Page int `json:"page,omitempty"`
	// Size is the page size. Pairs with Page.
	Size int `json:"size,omitempty"`
	// SortBy names the field to sort on.
	SortBy string `json:"sortBy,omitempty"`
	// SortDirection is asc or desc.
	SortDirection SortDirection `json:"sortDirection,omitempty"`
	// WithTotal asks the service to return the total count alongside results.
	WithTotal bool `json:"withTotal,omitempty"`
}

// Validate checks option ranges and that only one pagination style is used.
func (o ListOptions) Validate() error {
	offsetStyle := o.Limit != 0 || o.Offset != 0
	return validation.ValidateStruct(&o,
		validation.Field(&o.Limit, validation.Min(0)),
		validation.Field(&o.Offset, validation.Min(0)),
		validation.Field(&o.Page,
			validation.Min(0),
			validation.When(offsetStyle, validation.Empty.Error("cannot be combined with limit/offset")),
		),
		validation.Field(&o.Size,
			validation.Min(0),
			validation.When(offsetStyle, validation.Empty.Error("cannot be combined with limit/offset")),
		),
		validation.Field(&o.SortDirection, validation.In(SortAsc, SortDesc)),
	)
}

// ListArg is an optional argument of a list operation: an Expression, a
// ListOptions, or a *ListOptions.
type ListArg interface {
	listArg()
}

// Expression is a filter predicate evaluated by the service, e.g. "status='active'".
type Expression string

func (Expression) listArg()  {}
func (ListOptions) listArg() {}

// listQuery is the wire shape shared by list and search requests.
// Absent members are sent as null.
type listQuery struct {
	Expression *string      `json:"expression"`
	Options    *ListOptions `json:"options"`
}

// parseListArgs resolves the optional list arguments into a query. Each kind
// may appear at most once, in any order. An empty Expression counts as absent.
func parseListArgs(args []ListArg) (listQuery, error) {
	var (
		q       listQuery
		seenExp bool
	)

	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
			return listQuery{}, fmt.Errorf("%w: argument %d is nil", ErrInvalidValue, i)
		case Expression:
			if seenExp {
				return listQuery{}, fmt.Errorf("%w: expression given more than once", ErrInvalidValue)
			}
			seenExp = true
			if v != "" {
				s := string(v)
				q.Expression = &s
			}
		case ListOptions:
			if err := q.setOptions(&v); err != nil {
				return listQuery{}, err
			}
		case *ListOptions:
			if v == nil {
				return listQuery{}, fmt.Errorf("%w: argument %d is a nil options pointer", ErrInvalidValue, i)
			}
			opts := *v
			if err := q.setOptions(&opts); err != nil {
				return listQuery{}, err
			}
		default:
			return listQuery{}, fmt.Errorf("%w: argument %d must be an expression or options, got %T", ErrInvalidValue, i, arg)
		}
	}

	return q, nil
}

func (q *listQuery) setOptions(opts *ListOptions) error {
	if q.Options != nil {
		return fmt.Errorf("%w: options given more than once", ErrInvalidValue)
	}
	if err := validateOptions(opts); err != nil {
		return err
	}
	q.Options = opts
	return nil
}

func validateOptions(opts *ListOptions) error {
	if opts == nil {
		return nil
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: options: %v", ErrInvalidValue, err)
	}
	return nil
}
