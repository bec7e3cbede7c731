package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/gophertalk/internal/validators"
	"github.com/MKhiriev/gophertalk/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultUsersLimit = 10
	defaultPostsLimit = 100

	msgIntParsing   = "Input should be a valid integer, unable to parse string as an integer"
	msgJSONInvalid  = "JSON decode error"
	typeJSONInvalid = "json_invalid"
)

// decodeJSON reads the request body into dst. Malformed JSON becomes a
// validation error located at "body".
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validators.ValidationErrors{{
			Loc:  []string{validators.LocBody},
			Msg:  msgJSONInvalid,
			Type: typeJSONInvalid,
		}}
	}
	return nil
}

// queryParams collects the integer query parameters of one request and
// reports every unparsable value at once.
type queryParams struct {
	values map[string][]string
	errs   validators.ValidationErrors
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) intOr(name string, def int64) int64 {
	v := q.optionalInt(name)
	if v == nil {
		return def
	}
	return *v
}

func (q *queryParams) optionalInt(name string) *int64 {
	raw := q.optionalString(name)
	if raw == nil {
		return nil
	}

	n, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		q.errs = append(q.errs, validators.NewFieldError(validators.LocQuery, name, msgIntParsing, validators.TypeIntParsing))
		return nil
	}
	return &n
}

func (q *queryParams) optionalString(name string) *string {
	vs, ok := q.values[name]
	if !ok || len(vs) == 0 {
		return nil
	}
	return &vs[0]
}

func (q *queryParams) pagination(defaultLimit int64) models.Pagination {
	return models.Pagination{
		Limit:  q.intOr(validators.FieldLimit, defaultLimit),
		Offset: q.intOr(validators.FieldOffset, 0),
	}
}

func (q *queryParams) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return q.errs
}

// pathID parses the chi URL parameter name as an int64.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, validators.ValidationErrors{
			validators.NewFieldError(validators.LocPath, name, msgIntParsing, validators.TypeIntParsing),
		}
	}
	return id, nil
}
