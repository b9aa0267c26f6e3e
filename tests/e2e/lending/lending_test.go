//go:build e2e

package lending_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/handler/dto/request"
	resdto "lending-ledger/internal/handler/dto/response"
	"lending-ledger/internal/usecase/shared"
	"lending-ledger/tests/common/authtest"
	"lending-ledger/tests/common/dbtest"
	"lending-ledger/tests/common/httptest"
	"lending-ledger/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const requestsURL = "/api/requests"

type lendingSuite struct {
	e2e.SharedSuite
}

func TestLendingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(lendingSuite))
}

func (s *lendingSuite) submit(token string, itemID uuid.UUID) uuid.UUID {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, requestsURL,
		request.SubmitLendingRequest{ItemID: itemID, Justification: "field trip"}, token)

	var res resdto.LendingRequestResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	require.Equal(s.T(), "pending", res.Status)
	return res.ID
}

func (s *lendingSuite) TestLifecycle() {
	s.Run("正常系: 申請から返却までで在庫が元に戻る", func() {
		t := s.T()
		_, approver := authtest.CreateAndLogin(t, s.DB, s.Router, "approver@example.com", string(user.RoleApprover))
		_, requester := authtest.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(user.RoleRequester))
		itemID := dbtest.CreateTestItem(t, s.DB, "Camera", 2, 2)

		reqID := s.submit(requester, itemID)
		require.Equal(t, 1, dbtest.CountJobs(t, s.DB, shared.EventRequestSubmitted))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+reqID.String()+"/approve", nil, approver)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, "approved", dbtest.RequestStatus(t, s.DB, reqID))
		_, available := dbtest.ItemAvailability(t, s.DB, itemID)
		require.Equal(t, 1, available)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+reqID.String(), nil, requester)
		var view resdto.LendingRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.NotNil(t, view.DueAt, "期限が設定されていない")
		require.NotNil(t, view.ApprovedBy)
		require.False(t, view.Overdue)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+reqID.String()+"/return", nil, approver)
		var ret resdto.ReturnResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ret)
		require.False(t, ret.Clamped)

		require.Equal(t, "returned", dbtest.RequestStatus(t, s.DB, reqID))
		_, available = dbtest.ItemAvailability(t, s.DB, itemID)
		require.Equal(t, 2, available)
		require.Equal(t, 1, dbtest.CountJobs(t, s.DB, shared.EventRequestReturned))
	})

	s.Run("異常系: 処理済みの申請は再度承認できない", func() {
		t := s.T()
		_, approver := authtest.CreateAndLogin(t, s.DB, s.Router, "approver@example.com", string(user.RoleApprover))
		_, requester := authtest.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(user.RoleRequester))
		itemID := dbtest.CreateTestItem(t, s.DB, "Tripod", 1, 1)

		reqID := s.submit(requester, itemID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+reqID.String()+"/reject", nil, approver)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+reqID.String()+"/approve", nil, approver)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Request was already handled")

		_, available := dbtest.ItemAvailability(t, s.DB, itemID)
		require.Equal(t, 1, available, "却下で在庫が動いてはいけない")
	})

	s.Run("異常系: 他人の申請は閲覧できない", func() {
		t := s.T()
		_, owner := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleRequester))
		_, other := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleRequester))
		itemID := dbtest.CreateTestItem(t, s.DB, "Mic", 1, 1)

		reqID := s.submit(owner, itemID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+reqID.String(), nil, other)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")
	})

	s.Run("正常系: 期限の変更", func() {
		t := s.T()
		_, approver := authtest.CreateAndLogin(t, s.DB, s.Router, "approver@example.com", string(user.RoleApprover))
		_, requester := authtest.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(user.RoleRequester))
		itemID := dbtest.CreateTestItem(t, s.DB, "Laptop", 1, 1)

		reqID := s.submit(requester, itemID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+reqID.String()+"/approve", nil, approver)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		due := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, requestsURL+"/"+reqID.String()+"/due-date",
			request.AmendDueDateRequest{DueAt: due}, approver)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+reqID.String(), nil, approver)
		var view resdto.LendingRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.NotNil(t, view.DueAt)
		require.True(t, due.Equal(*view.DueAt), "期限が反映されていない: %s", view.DueAt)
	})
}

// Two approvers race for the last unit. Exactly one approval wins and
// available never goes negative.
func (s *lendingSuite) TestConcurrentApproval() {
	s.Run("正常系: 最後の一台は一件だけ承認される", func() {
		t := s.T()
		_, approverA := authtest.CreateAndLogin(t, s.DB, s.Router, "a@example.com", string(user.RoleApprover))
		_, approverB := authtest.CreateAndLogin(t, s.DB, s.Router, "b@example.com", string(user.RoleApprover))
		_, requester := authtest.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(user.RoleRequester))
		itemID := dbtest.CreateTestItem(t, s.DB, "Projector", 1, 1)

		first := s.submit(requester, itemID)
		second := s.submit(requester, itemID)

		var (
			wg    sync.WaitGroup
			codes = make([]int, 2)
		)
		for i, pair := range []struct {
			token string
			id    uuid.UUID
		}{{approverA, first}, {approverB, second}} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost,
					fmt.Sprintf("%s/%s/approve", requestsURL, pair.id), nil, pair.token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		require.ElementsMatch(t, []int{http.StatusNoContent, http.StatusConflict}, codes)

		_, available := dbtest.ItemAvailability(t, s.DB, itemID)
		require.Equal(t, 0, available)

		statuses := []string{dbtest.RequestStatus(t, s.DB, first), dbtest.RequestStatus(t, s.DB, second)}
		require.ElementsMatch(t, []string{"approved", "pending"}, statuses)
		require.Equal(t, 1, dbtest.CountJobs(t, s.DB, shared.EventRequestApproved))
	})
}

func (s *lendingSuite) TestListPaging() {
	s.Run("正常系: カーソルで全件を重複なく辿れる", func() {
		t := s.T()
		_, approver := authtest.CreateAndLogin(t, s.DB, s.Router, "approver@example.com", string(user.RoleApprover))
		_, requester := authtest.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(user.RoleRequester))
		itemID := dbtest.CreateTestItem(t, s.DB, "Cable", 10, 10)

		want := map[uuid.UUID]bool{}
		for range 5 {
			want[s.submit(requester, itemID)] = true
		}

		seen := map[uuid.UUID]bool{}
		url := requestsURL + "?limit=2"
		for pages := 0; ; pages++ {
			require.Less(t, pages, 5, "ページングが終わらない")

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, approver)
			var page resdto.LendingRequestListResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			for _, r := range page.Items {
				require.False(t, seen[r.ID], "重複: %s", r.ID)
				seen[r.ID] = true
			}
			if page.NextCursor == nil {
				break
			}
			url = requestsURL + "?limit=2&after=" + *page.NextCursor
		}
		require.Equal(t, want, seen)
	})
}

func (s *lendingSuite) TestDashboard() {
	s.Run("正常系: 集計", func() {
		t := s.T()
		_, approver := authtest.CreateAndLogin(t, s.DB, s.Router, "approver@example.com", string(user.RoleApprover))
		_, requester := authtest.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(user.RoleRequester))
		itemID := dbtest.CreateTestItem(t, s.DB, "Camera", 3, 3)
		dbtest.CreateTestItem(t, s.DB, "Tripod", 2, 2)

		approved := s.submit(requester, itemID)
		s.submit(requester, itemID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL+"/"+approved.String()+"/approve", nil, approver)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/dashboard/summary", nil, approver)
		var sum resdto.SummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sum)
		require.Equal(t, resdto.SummaryResponse{
			ItemCount:      2,
			TotalQuantity:  5,
			TotalAvailable: 4,
			OnLoan:         1,
			Pending:        1,
			Approved:       1,
		}, sum)
	})
}
