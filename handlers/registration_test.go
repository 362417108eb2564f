package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"travel-registration/catalog"
	"travel-registration/database"
	"travel-registration/middleware"
)

func newTestApp(t *testing.T, initStore bool) (*fiber.App, *database.Store) {
	t.Helper()

	store := database.New(filepath.Join(t.TempDir(), "registrations.xlsx"))
	if initStore {
		require.NoError(t, store.Init())
	}

	engine := html.New("../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	h := New(catalog.Default(), store, middleware.NewFlash())
	app.Get("/", h.GetIndex)
	app.Post("/submit", h.PostSubmit)
	app.Get("/admin", h.GetAdmin)
	app.Get("/download", h.GetDownload)

	return app, store
}

func validForm() url.Values {
	return url.Values{
		"full_name":         {"Bat"},
		"phone":             {"99112233"},
		"email":             {"a@b.com"},
		"route":             {"Бангкок–Паттая"},
		"package":           {"1 хүн"},
		"deposit_confirmed": {"on"},
	}
}

func submitForm(t *testing.T, app *fiber.App, form url.Values) *http.Response {
	t.Helper()

	req, err := http.NewRequest("POST", "/submit", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

// followRedirect fetches path carrying the session cookies res set, the way
// a browser lands back on the form after a submit.
func followRedirect(t *testing.T, app *fiber.App, res *http.Response, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	for _, cookie := range res.Cookies() {
		req.AddCookie(cookie)
	}

	page, err := app.Test(req, -1)
	require.NoError(t, err)
	return page
}

func TestSubmitPersistsRegistration(t *testing.T) {
	app, store := newTestApp(t, true)

	res := submitForm(t, app, validForm())
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))

	views, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, views, 1)

	got := views[0]
	assert.Equal(t, "Bat", got.FullName)
	assert.Equal(t, "99112233", got.Phone)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "Бангкок–Паттая", got.Route)
	assert.Equal(t, "2026-04-20", got.DepartureDate)
	assert.Equal(t, "1 хүн", got.Package)
	assert.Equal(t, "5,490,000", got.TotalPrice)
	assert.Equal(t, "2,745,000", got.Deposit)
	assert.Equal(t, "Yes", got.DepositConfirmed)
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(url.Values)
	}{
		{"short phone", func(f url.Values) { f.Set("phone", "1234567") }},
		{"non-numeric phone", func(f url.Values) { f.Set("phone", "9911223a") }},
		{"deposit not confirmed", func(f url.Values) { f.Del("deposit_confirmed") }},
		{"deposit wrong sentinel", func(f url.Values) { f.Set("deposit_confirmed", "yes") }},
		{"missing name", func(f url.Values) { f.Set("full_name", "   ") }},
		{"missing email", func(f url.Values) { f.Set("email", "") }},
		{"unknown route", func(f url.Values) { f.Set("route", "Хархорин–Марс") }},
		{"unknown package", func(f url.Values) { f.Set("package", "3 хүн") }},
	}

	for _, test := range tests {
		app, store := newTestApp(t, true)

		form := validForm()
		test.mutate(form)

		res := submitForm(t, app, form)
		assert.Equalf(t, fiber.StatusFound, res.StatusCode, test.description)
		assert.Equalf(t, "/", res.Header.Get("Location"), test.description)

		views, err := store.ReadAll()
		require.NoError(t, err)
		assert.Emptyf(t, views, "%v: nothing may be persisted", test.description)
	}
}

func TestSubmitFlashesFirstFailingCheck(t *testing.T) {
	app, _ := newTestApp(t, true)

	form := validForm()
	form.Set("phone", "123")
	form.Del("deposit_confirmed")
	form.Set("full_name", "")

	res := submitForm(t, app, form)
	page := followRedirect(t, app, res, "/")
	assert.Equal(t, fiber.StatusOK, page.StatusCode)

	body, err := io.ReadAll(page.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `<div class="flash error">`+msgPhoneFormat+`</div>`)
	assert.NotContains(t, string(body), msgDepositRequired)
	assert.NotContains(t, string(body), msgFieldsRequired)
}

func TestSubmitFlashesSuccessOnce(t *testing.T) {
	app, _ := newTestApp(t, true)

	res := submitForm(t, app, validForm())
	page := followRedirect(t, app, res, "/")
	assert.Equal(t, fiber.StatusOK, page.StatusCode)

	body, err := io.ReadAll(page.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `<div class="flash success">`+msgSaved+`</div>`)

	// the notice is one-shot: a reload must not show it again
	again := followRedirect(t, app, res, "/")
	body, err = io.ReadAll(again.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), msgSaved)
}

func TestIndexRenders(t *testing.T) {
	app, _ := newTestApp(t, true)

	res := getPath(t, app, "/")
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Бангкок–Паттая")
}

func TestAdminRendersEmptyStore(t *testing.T) {
	app, _ := newTestApp(t, true)

	res := getPath(t, app, "/admin")
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestAdminRendersMissingWorkbook(t *testing.T) {
	app, _ := newTestApp(t, false)

	res := getPath(t, app, "/admin")
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestAdminListsSubmittedRegistration(t *testing.T) {
	app, _ := newTestApp(t, true)
	submitForm(t, app, validForm())

	res := getPath(t, app, "/admin")
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Bat")
	assert.Contains(t, string(body), "5,490,000")
	assert.Contains(t, string(body), "2,745,000")
}

func TestDownloadServesWorkbook(t *testing.T) {
	app, _ := newTestApp(t, true)
	submitForm(t, app, validForm())

	res := getPath(t, app, "/download")
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Disposition"), "registrations_")
	assert.Contains(t, res.Header.Get("Content-Disposition"), ".xlsx")

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	// the download is the backing workbook itself, row included
	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bat", rows[1][1])
	assert.Equal(t, "99112233", rows[1][2])
	assert.Equal(t, "Бангкок–Паттая", rows[1][4])
	assert.Equal(t, "Yes", rows[1][9])
}

func TestDownloadMissingWorkbookRedirects(t *testing.T) {
	app, _ := newTestApp(t, false)

	res := getPath(t, app, "/download")
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
	assert.Equal(t, "/admin", res.Header.Get("Location"))
}
