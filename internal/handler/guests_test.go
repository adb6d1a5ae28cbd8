package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"mealdesk/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSearchShortQueryReturnsEmpty(t *testing.T) {
	r, mock := newTestRouter(t)

	for _, q := range []string{"", "a", "%20a%20"} {
		w := doJSON(r, http.MethodGet, "/api/guests?q="+q, "")
		require.Equal(t, http.StatusOK, w.Code, "q=%q", q)
		require.JSONEq(t, `{"guests":[]}`, w.Body.String(), "q=%q", q)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchReturnsMatches(t *testing.T) {
	r, mock := newTestRouter(t)

	rows := sqlmock.NewRows([]string{
		"id", "external_id", "first_name", "last_name", "full_name",
		"preferred_name", "housing_status", "age_group", "gender",
	}).
		AddRow("id-1", "G-1001", "Ana", "Ramirez", "ANA RAMIREZ", nil, "unhoused", "adult", "female").
		AddRow("id-2", "G-2002", "Briana", "Cole", "Briana Cole", "Ana", "sheltered", "adult", "female")
	mock.ExpectQuery(`SELECT \* FROM "guests" WHERE .*ILIKE.*ORDER BY full_name`).
		WillReturnRows(rows)

	w := doJSON(r, http.MethodGet, "/api/guests?q=ana", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body model.GuestsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Guests, 2)
	require.Equal(t, "ANA RAMIREZ", body.Guests[0].FullName)
	require.Equal(t, "G-1001", body.Guests[0].ExternalID)
	require.Nil(t, body.Guests[0].PreferredName)
}

func TestSearchStoreFailure(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "guests"`).
		WillReturnError(fmt.Errorf("pq: connection refused"))

	w := doJSON(r, http.MethodGet, "/api/guests?q=ana", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Unable to search guests right now", message(t, w))
	require.NotContains(t, w.Body.String(), "connection refused")
}
