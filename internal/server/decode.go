package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"careconnect/internal/utils"
	"careconnect/pkg/types"
)

const maxBodyBytes = 1 << 20

// decodeInput reads a JSON object or an url-encoded form into a raw field
// map. Form bodies go through formShape so only its fields are picked up.
// An empty body decodes to an empty map.
func decodeInput(w http.ResponseWriter, r *http.Request, formShape any) (map[string]any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		parse := r.ParseForm
		if mediaType == "multipart/form-data" {
			parse = func() error { return r.ParseMultipartForm(maxBodyBytes) }
		}
		if err := parse(); err != nil {
			return nil, fmt.Errorf("failed to parse form: %w", err)
		}

		if err := decoder.Decode(formShape, r.PostForm); err != nil {
			return nil, fmt.Errorf("failed to decode form: %w", err)
		}

		return utils.FormToMap(formShape), nil
	}

	input := make(map[string]any)
	err := json.NewDecoder(r.Body).Decode(&input)
	if errors.Is(err, io.EOF) {
		return input, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode json body: %w", err)
	}

	return input, nil
}

type listQuery struct {
	Limit uint64 `form:"limit"`
	Sort  string `form:"sort"`
	Order string `form:"order"`
}

// listOptions reads ?sort=, ?order=asc|desc and ?limit= against the sort
// fields a resource supports. The zero value means the service default.
func listOptions(r *http.Request, sortable ...types.SortField) (types.ListOptions, []string) {
	var q listQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		return types.ListOptions{}, []string{"limit must be a non-negative integer"}
	}

	var (
		opts = types.ListOptions{Limit: q.Limit, Descending: true}
		errs []string
	)

	if q.Sort != "" {
		opts.SortField = types.SortField(q.Sort)
		if !containsSortField(sortable, opts.SortField) {
			errs = append(errs, fmt.Sprintf("%q is not a sortable field", q.Sort))
		}
	}

	switch q.Order {
	case "", "desc":
	case "asc":
		opts.Descending = false
	default:
		errs = append(errs, fmt.Sprintf("%q is not a valid order; expected asc or desc", q.Order))
	}

	if q.Sort == "" && q.Order != "" {
		opts.SortField = sortable[0]
	}

	return opts, errs
}

func containsSortField(fields []types.SortField, f types.SortField) bool {
	for _, v := range fields {
		if v == f {
			return true
		}
	}
	return false
}
