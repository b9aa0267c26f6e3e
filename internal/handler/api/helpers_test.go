//go:build unit

package api_test

import (
	"errors"

	"lending-ledger/internal/domain/user"
	usecasemock "lending-ledger/tests/mock/usecase"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const (
	approverToken  = "approver-token"
	requesterToken = "requester-token"
)

// actors stands in for the JWT service: two fixed tokens, one per role.
type actors struct {
	approverID  uuid.UUID
	requesterID uuid.UUID
}

func stubTokens(v *usecasemock.MockTokenValidator) actors {
	a := actors{approverID: uuid.New(), requesterID: uuid.New()}
	v.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (uuid.UUID, user.Role, error) {
		switch token {
		case approverToken:
			return a.approverID, user.RoleApprover, nil
		case requesterToken:
			return a.requesterID, user.RoleRequester, nil
		default:
			return uuid.Nil, "", errors.New("invalid token")
		}
	}).AnyTimes()
	return a
}
