package handler

import (
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	httpctx "github.com/gastor/gastor-server/internal/api/http/context"
	"github.com/gastor/gastor-server/internal/model"
)

var testCtxMgr = httpctx.NewManager()

func testUser() model.User {
	return model.User{ID: uuid.New(), Email: "user@example.com", Name: "User"}
}

// authedRequest returns the request with the user injected the way the
// authenticate middleware does it.
func authedRequest(r *http.Request, user model.User) *http.Request {
	return r.WithContext(testCtxMgr.SetUserToContext(r.Context(), user))
}

func doRequest(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}
