package fixture

import (
	"embed"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

//go:embed data/*.json
var dataFS embed.FS

// Projections returned by the list endpoints, which carry fewer fields than
// the detail endpoints.
const (
	planeListFields   = `{plane_id,name,nation,type,level,is_premium,is_gift,images}`
	accountListFields = `{account_id,nickname}`
	clanListFields    = `{clan_id,tag,name,members_count,created_at}`
)

const (
	maxIDs          = 100
	minSearchLength = 3
)

// Transport is an http.RoundTripper that answers upstream-shaped requests
// from embedded data, so the whole pipeline runs offline.
type Transport struct {
	planes   gjson.Result
	accounts []gjson.Result
	clans    []gjson.Result
	failures map[string]int
}

// Option customizes a Transport.
type Option func(*Transport)

// WithFailure makes every request whose path ends with suffix answer status.
func WithFailure(suffix string, status int) Option {
	return func(t *Transport) {
		t.failures[suffix] = status
	}
}

// NewTransport loads the embedded data set.
func NewTransport(opts ...Option) *Transport {
	t := &Transport{
		planes:   gjson.ParseBytes(mustRead("data/planes.json")),
		accounts: gjson.ParseBytes(mustRead("data/accounts.json")).Array(),
		clans:    gjson.ParseBytes(mustRead("data/clans.json")).Array(),
		failures: make(map[string]int),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewHTTPClient returns an *http.Client backed by a fixture Transport.
func NewHTTPClient(opts ...Option) *http.Client {
	return &http.Client{Transport: NewTransport(opts...)}
}

func mustRead(name string) []byte {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("fixture: missing embedded %s: %v", name, err))
	}
	return b
}

// RoundTrip routes by path suffix, so any base URL prefix works.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	if req.Method != http.MethodGet {
		return respond(req, http.StatusMethodNotAllowed, "method not allowed"), nil
	}

	path := req.URL.Path
	for suffix, status := range t.failures {
		if strings.HasSuffix(path, suffix) {
			return respond(req, status, "fixture failure"), nil
		}
	}

	q := req.URL.Query()
	if strings.TrimSpace(q.Get("application_id")) == "" {
		return respond(req, http.StatusOK, apiError(402, "APPLICATION_ID_NOT_SPECIFIED", "application_id")), nil
	}

	var body string
	switch {
	case strings.HasSuffix(path, "/encyclopedia/planes/"):
		body = t.listPlanes()
	case strings.HasSuffix(path, "/encyclopedia/planeinfo/"):
		body = t.planeInfo(q.Get("plane_id"))
	case strings.HasSuffix(path, "/account/list/"):
		body = t.searchAccounts(q.Get("search"))
	case strings.HasSuffix(path, "/account/info2/"):
		body = keyedByField(t.accounts, "account_id", q.Get("account_id"), "INVALID_ACCOUNT_ID")
	case strings.HasSuffix(path, "/clans/list/"):
		body = project(t.clans, clanListFields)
	case strings.HasSuffix(path, "/clans/info/"):
		body = keyedByField(t.clans, "clan_id", q.Get("clan_id"), "INVALID_CLAN_ID")
	default:
		return respond(req, http.StatusNotFound, apiError(404, "METHOD_NOT_FOUND", "")), nil
	}
	return respond(req, http.StatusOK, body), nil
}

func (t *Transport) listPlanes() string {
	var b strings.Builder
	count := 0
	b.WriteByte('{')
	t.planes.ForEach(func(key, value gjson.Result) bool {
		if count > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:%s", key.String(), value.Get(planeListFields).Raw)
		count++
		return true
	})
	b.WriteByte('}')
	return ok(count, b.String())
}

func (t *Transport) planeInfo(raw string) string {
	ids, errBody := parseIDs(raw, "plane_id", "INVALID_PLANE_ID")
	if errBody != "" {
		return errBody
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		entry := t.planes.Get(id)
		value := "null"
		if entry.IsObject() {
			value = entry.Raw
		}
		fmt.Fprintf(&b, "%q:%s", id, value)
	}
	b.WriteByte('}')
	return ok(len(ids), b.String())
}

// searchAccounts mirrors the upstream default search: a case-insensitive
// nickname prefix match of at least three characters.
func (t *Transport) searchAccounts(search string) string {
	search = strings.TrimSpace(search)
	if search == "" {
		return apiError(402, "SEARCH_NOT_SPECIFIED", "search")
	}
	if len([]rune(search)) < minSearchLength {
		return apiError(407, "NOT_ENOUGH_SEARCH_LENGTH", "search")
	}
	prefix := strings.ToLower(search)
	matches := make([]gjson.Result, 0)
	for _, a := range t.accounts {
		if strings.HasPrefix(strings.ToLower(a.Get("nickname").String()), prefix) {
			matches = append(matches, a)
		}
	}
	return project(matches, accountListFields)
}

func project(records []gjson.Result, fields string) string {
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = r.Get(fields).Raw
	}
	return ok(len(parts), "["+strings.Join(parts, ",")+"]")
}

func keyedByField(records []gjson.Result, field, raw, invalid string) string {
	ids, errBody := parseIDs(raw, field, invalid)
	if errBody != "" {
		return errBody
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		value := "null"
		for _, r := range records {
			if r.Get(field).String() == id {
				value = r.Raw
				break
			}
		}
		fmt.Fprintf(&b, "%q:%s", id, value)
	}
	b.WriteByte('}')
	return ok(len(ids), b.String())
}

func parseIDs(raw, field, invalid string) ([]string, string) {
	if strings.TrimSpace(raw) == "" {
		return nil, apiError(402, strings.ToUpper(field)+"_NOT_SPECIFIED", field)
	}
	parts := strings.Split(raw, ",")
	if len(parts) > maxIDs {
		return nil, apiError(407, strings.ToUpper(field)+"_LIST_LIMIT_EXCEEDED", field)
	}
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if _, err := strconv.ParseInt(p, 10, 64); err != nil {
			return nil, apiError(407, invalid, field)
		}
		ids = append(ids, p)
	}
	return ids, ""
}

func ok(count int, data string) string {
	return fmt.Sprintf(`{"status":"ok","meta":{"count":%d},"data":%s}`, count, data)
}

func apiError(code int, message, field string) string {
	fieldJSON := "null"
	if field != "" {
		fieldJSON = strconv.Quote(field)
	}
	return fmt.Sprintf(`{"status":"error","error":{"code":%d,"message":%q,"field":%s,"value":null}}`, code, message, fieldJSON)
}

func respond(req *http.Request, status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json; charset=utf-8")
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
