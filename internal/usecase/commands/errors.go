package commands

import (
	"lending-ledger/internal/domain/item"
	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/pkg/errs"
)

var kinds = []error{
	errs.ErrNotFound,
	errs.ErrInvalidTransition,
	errs.ErrInsufficientAvailability,
	errs.ErrValidation,
	errs.ErrInvalidState,
	errs.ErrForbidden,
	errs.ErrConflict,
	errs.ErrUnauthorized,
}

var kindBySentinel = []struct {
	sentinels []error
	kind      error
}{
	{[]error{item.ErrNotFound, lending.ErrNotFound, user.ErrNotFound}, errs.ErrNotFound},
	{[]error{lending.ErrInvalidTransition, lending.ErrStatusChanged}, errs.ErrInvalidTransition},
	{[]error{item.ErrNoUnitAvailable}, errs.ErrInsufficientAvailability},
	{[]error{lending.ErrNotApproved}, errs.ErrInvalidState},
	{[]error{user.ErrEmailTaken}, errs.ErrConflict},
	{[]error{
		lending.ErrDueDateInPast, lending.ErrJustificationRequired, lending.ErrJustificationTooLong,
		lending.ErrGroupRequired, lending.ErrGroupTooLong, lending.ErrRequesterRequired,
		lending.ErrItemRequired, lending.ErrApproverRequired, lending.ErrInvalidStatus,
		item.ErrEmptyName, item.ErrNameTooLong, item.ErrEmptyCategory, item.ErrCategoryTooLong,
		item.ErrInvalidImageURL, item.ErrNegativeQuantity, item.ErrNegativeAvailable,
		user.ErrInvalidEmail, user.ErrInvalidRole, user.ErrPasswordTooWeak, user.ErrPasswordTooLong, user.ErrInvalidName,
		user.ErrGroupTooLong,
	}, errs.ErrValidation},
}

// markKind attaches the error kind the delivery layer maps to a status.
// Errors that already carry a kind, and infrastructure failures, pass
// through unchanged.
func markKind(err error) error {
	if err == nil || errs.IsAny(err, kinds...) {
		return err
	}
	for _, m := range kindBySentinel {
		if errs.IsAny(err, m.sentinels...) {
			return errs.Mark(err, m.kind)
		}
	}
	return err
}
