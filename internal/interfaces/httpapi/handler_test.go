package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/golfpool/external/paymentgw"
	"github.com/fairwaylabs/golfpool/internal/domain/user"
	"github.com/fairwaylabs/golfpool/internal/infrastructure/repository/memory"
	idgen "github.com/fairwaylabs/golfpool/internal/platform/id"
	"github.com/fairwaylabs/golfpool/internal/platform/logging"
	"github.com/fairwaylabs/golfpool/internal/usecase"
)

const testWebhookSecret = "whsec-test"

// mapVerifier resolves tokens from a fixed table, one token per test user.
type mapVerifier map[string]user.Principal

func (v mapVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if principal, ok := v[token]; ok {
		return principal, nil
	}
	return user.Principal{}, usecase.ErrUnauthorized
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	entryRepo := memory.NewEntryRepository()
	leaderboardRepo := memory.NewLeaderboardRepository()
	leagueRepo := memory.NewLeagueRepository(entryRepo, leaderboardRepo)
	rosterRepo := memory.NewRosterRepository()
	tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())
	golferRepo := memory.NewGolferRepository(memory.SeedGolfers(), memory.SeedMastersOdds())
	idGen := idgen.NewRandomGenerator()

	handler := NewHandler(
		usecase.NewLeagueService(leagueRepo, entryRepo, tournamentRepo, idGen),
		usecase.NewRosterService(rosterRepo, entryRepo, leagueRepo, golferRepo, idGen),
		usecase.NewEntryService(entryRepo, leagueRepo),
		usecase.NewPaymentService(entryRepo, leagueRepo, nil),
		usecase.NewLeaderboardService(leaderboardRepo, leagueRepo, entryRepo, tournamentRepo, 2),
		usecase.NewReferenceService(tournamentRepo, golferRepo),
		testWebhookSecret,
		logging.NewNop(),
	)

	verifier := mapVerifier{
		"token-alice": {UserID: "alice", Username: "alice", Email: "alice@example.com"},
		"token-bob":   {UserID: "bob", Username: "bob", Email: "bob@example.com"},
	}

	return NewRouter(handler, verifier, logging.NewNop(), nil, "job-secret")
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if payload != nil {
		encoded, err := sonic.Marshal(payload)
		require.NoError(t, err)
		body = strings.NewReader(string(encoded))
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Data       T      `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "2.0", envelope.APIVersion)
	return envelope.Data
}

func createLeagueViaAPI(t *testing.T, router http.Handler, token string, fee float64) leagueDTO {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/v1/leagues", token, map[string]any{
		"name":             "Weekend Warriors",
		"tournament_id":    memory.TournamentIDMasters,
		"entry_fee":        fee,
		"max_participants": 10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeData[leagueDTO](t, rec)
}

func TestCreateAndGetLeague(t *testing.T) {
	router := newTestRouter(t)

	created := createLeagueViaAPI(t, router, "token-alice", 50)
	require.Equal(t, "alice", created.CreatorID)
	require.Equal(t, "open", created.Status)
	require.Len(t, created.InvitationCode, 8)

	rec := doJSON(t, router, http.MethodGet, "/v1/leagues/"+created.ID, "token-alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeData[leagueDTO](t, rec)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, memory.TournamentIDMasters, fetched.TournamentID)
}

func TestCreateLeague_RequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/leagues", "", map[string]any{
		"name":             "Weekend Warriors",
		"tournament_id":    memory.TournamentIDMasters,
		"entry_fee":        50,
		"max_participants": 10,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateLeague_RejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/leagues", "token-alice", map[string]any{
		"name":             "Weekend Warriors",
		"tournament_id":    memory.TournamentIDMasters,
		"entry_fee":        50,
		"max_participants": 10,
		"surprise":         true,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJoinLeagueAndListEntries(t *testing.T) {
	router := newTestRouter(t)

	created := createLeagueViaAPI(t, router, "token-alice", 25)

	rec := doJSON(t, router, http.MethodPost, "/v1/leagues/join", "token-bob", map[string]any{
		"invitation_code": created.InvitationCode,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	joined := decodeData[entryDTO](t, rec)
	require.Equal(t, "bob", joined.UserID)
	require.Equal(t, "pending", joined.PaymentStatus)

	rec = doJSON(t, router, http.MethodGet, "/v1/leagues/"+created.ID+"/entries", "token-alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeData[[]entryDTO](t, rec)
	require.Len(t, entries, 2)
}

func TestJoinLeague_BadCodeNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/leagues/join", "token-bob", map[string]any{
		"invitation_code": "NOPECODE",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTeamLifecycleViaAPI(t *testing.T) {
	router := newTestRouter(t)

	created := createLeagueViaAPI(t, router, "token-alice", 0)

	rec := doJSON(t, router, http.MethodGet, "/v1/entries/me", "token-alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	myEntries := decodeData[[]entryDTO](t, rec)
	require.Len(t, myEntries, 1)
	entryID := myEntries[0].ID
	require.Equal(t, created.ID, myEntries[0].LeagueID)

	rec = doJSON(t, router, http.MethodPost, "/v1/teams", "token-alice", map[string]any{
		"entry_id": entryID,
		"picks": []map[string]any{
			{"golfer_id": "scottie-scheffler", "category": 1},
			{"golfer_id": "xander-schauffele", "category": 2},
			{"golfer_id": "tommy-fleetwood", "category": 3},
			{"golfer_id": "brian-harman", "category": 4},
			{"golfer_id": "sahith-theegala", "category": 5},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	team := decodeData[teamDTO](t, rec)
	require.Equal(t, 15, team.TotalCategoryPoints)
	require.True(t, team.IsValid)

	rec = doJSON(t, router, http.MethodGet, "/v1/entries/"+entryID+"/team", "token-alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/v1/teams/"+team.ID, "token-alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateTeam_CategorySumTooLowIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	createLeagueViaAPI(t, router, "token-alice", 0)

	rec := doJSON(t, router, http.MethodGet, "/v1/entries/me", "token-alice", nil)
	myEntries := decodeData[[]entryDTO](t, rec)
	require.Len(t, myEntries, 1)

	rec = doJSON(t, router, http.MethodPost, "/v1/teams", "token-alice", map[string]any{
		"entry_id": myEntries[0].ID,
		"picks": []map[string]any{
			{"golfer_id": "scottie-scheffler", "category": 1},
			{"golfer_id": "rory-mcilroy", "category": 1},
			{"golfer_id": "jon-rahm", "category": 1},
			{"golfer_id": "viktor-hovland", "category": 1},
			{"golfer_id": "xander-schauffele", "category": 2},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestCheckoutNotConfiguredIs503(t *testing.T) {
	router := newTestRouter(t)

	createLeagueViaAPI(t, router, "token-alice", 40)
	rec := doJSON(t, router, http.MethodGet, "/v1/entries/me", "token-alice", nil)
	myEntries := decodeData[[]entryDTO](t, rec)
	require.Len(t, myEntries, 1)

	rec = doJSON(t, router, http.MethodPost, "/v1/entries/"+myEntries[0].ID+"/checkout", "token-alice", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPaymentWebhookFlow(t *testing.T) {
	router := newTestRouter(t)

	createLeagueViaAPI(t, router, "token-alice", 100)
	rec := doJSON(t, router, http.MethodGet, "/v1/entries/me", "token-alice", nil)
	myEntries := decodeData[[]entryDTO](t, rec)
	require.Len(t, myEntries, 1)
	entryID := myEntries[0].ID

	body := []byte(`{"type":"checkout.completed","entry_id":"` + entryID + `","amount_net":96.8}`)

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", strings.NewReader(string(body)))
	req.Header.Set("X-Webhook-Signature", paymentgw.ComputeSignature(testWebhookSecret, body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/v1/entries/"+entryID, "token-alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeData[entryDTO](t, rec)
	require.Equal(t, "paid", updated.PaymentStatus)
	require.InDelta(t, 96.8, updated.AmountPaid, 1e-9)
}

func TestPaymentWebhook_BadSignatureRejected(t *testing.T) {
	router := newTestRouter(t)

	body := []byte(`{"type":"checkout.completed","entry_id":"entry-x"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", strings.NewReader(string(body)))
	req.Header.Set("X-Webhook-Signature", "deadbeef")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLeaderboardViewViaAPI(t *testing.T) {
	router := newTestRouter(t)

	created := createLeagueViaAPI(t, router, "token-alice", 0)

	rec := doJSON(t, router, http.MethodGet, "/v1/leagues/"+created.ID+"/leaderboard", "token-alice", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	board := decodeData[leaderboardDTO](t, rec)
	require.Equal(t, created.ID, board.LeagueID)
	require.Equal(t, "Weekend Warriors", board.LeagueName)
	require.Equal(t, "Masters Tournament", board.TournamentName)

	rec = doJSON(t, router, http.MethodGet, "/v1/leagues/"+created.ID+"/leaderboard", "token-bob", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLeaderboardRefreshViaAPI(t *testing.T) {
	router := newTestRouter(t)

	created := createLeagueViaAPI(t, router, "token-alice", 0)

	rec := doJSON(t, router, http.MethodPost, "/v1/leagues/"+created.ID+"/leaderboard/refresh", "token-alice", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	board := decodeData[leaderboardDTO](t, rec)
	require.Equal(t, created.ID, board.LeagueID)
	require.Len(t, board.Rankings, 1)

	rec = doJSON(t, router, http.MethodPost, "/v1/leagues/"+created.ID+"/leaderboard/refresh", "token-bob", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestInternalRefreshJob(t *testing.T) {
	router := newTestRouter(t)

	created := createLeagueViaAPI(t, router, "token-alice", 0)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/leaderboards/refresh",
		strings.NewReader(`{"league_ids":["`+created.ID+`"]}`))
	req.Header.Set("X-Internal-Job-Token", "job-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decodeData[refreshResultDTO](t, rec)
	require.Equal(t, 1, result.Total)
	require.Equal(t, 1, result.Succeeded)
	require.Equal(t, 0, result.Failed)
}

func TestInternalScoreUpdate(t *testing.T) {
	router := newTestRouter(t)

	createLeagueViaAPI(t, router, "token-alice", 0)
	rec := doJSON(t, router, http.MethodGet, "/v1/entries/me", "token-alice", nil)
	myEntries := decodeData[[]entryDTO](t, rec)
	require.Len(t, myEntries, 1)

	req := httptest.NewRequest(http.MethodPut, "/v1/internal/entries/"+myEntries[0].ID+"/score",
		strings.NewReader(`{"total_score":182.5}`))
	req.Header.Set("X-Internal-Job-Token", "job-secret")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	updated := decodeData[entryDTO](t, recorder)
	require.InDelta(t, 182.5, updated.TotalScore, 1e-9)
}

func TestReferenceRoutesArePublic(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/tournaments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tournaments := decodeData[[]tournamentDTO](t, rec)
	require.Len(t, tournaments, 4)

	rec = doJSON(t, router, http.MethodGet, "/v1/tournaments/"+memory.TournamentIDMasters+"/odds?category=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	odds := decodeData[[]tournamentOddsDTO](t, rec)
	require.NotEmpty(t, odds)
	for _, o := range odds {
		require.Equal(t, 1, o.Category)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/golfers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	golfers := decodeData[[]golferDTO](t, rec)
	require.Len(t, golfers, 25)
}
