package engine

import (
	"context"
	"encoding/json"

	// Packages
	vantage "github.com/perimeterlabs/vantage"
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Page is one bounded slice of a list-shaped result. TotalCount is nil when
// the server does not report a total.
type Page struct {
	Data       []json.RawMessage `json:"data"`
	Offset     int64             `json:"offset,omitempty"`
	Limit      int64             `json:"limit,omitempty"`
	Count      int64             `json:"count,omitempty"`
	TotalCount *int64            `json:"totalCount,omitempty"`
}

// pageShape is the lenient decoding used to detect page-shaped responses.
// totalCount stays raw so that a non-numeric value degrades to "no total
// reported" rather than a decode failure.
type pageShape struct {
	Data       *[]json.RawMessage `json:"data"`
	TotalCount json.RawMessage    `json:"totalCount"`
}

// merged is the uniform result shape for completed list operations.
type merged struct {
	Data       []json.RawMessage `json:"data"`
	TotalCount int64             `json:"totalCount"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DefaultPageSize is the limit used for each page fetch.
const DefaultPageSize = 200

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CallAllPages assembles the complete result set for an operation. A
// non-paginatable operation is a single transport call, returned unchanged.
// Otherwise pages are fetched sequentially with a fixed limit and an offset
// advanced by the size of each returned page, until the accumulated count
// reaches the reported total or a short page arrives; a page without a
// numeric totalCount is trusted as complete. A response that is not
// page-shaped (for example an error body that bypassed transport-level
// failure) aborts pagination immediately and is returned as-is. A transport
// failure aborts the whole call; pages already fetched are discarded.
func CallAllPages(ctx context.Context, transport vantage.Transport, op catalog.Operation, params catalog.Params, pageSize int64) (json.RawMessage, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if !op.Paginatable {
		req, err := catalog.Resolve(op, params)
		if err != nil {
			return nil, err
		}
		return transport.Do(ctx, req.Method, req.Path, req.Query, req.Body)
	}

	var data []json.RawMessage
	var offset int64
	for {
		params.Offset = &offset
		params.Limit = &pageSize
		req, err := catalog.Resolve(op, params)
		if err != nil {
			return nil, err
		}
		response, err := transport.Do(ctx, req.Method, req.Path, req.Query, req.Body)
		if err != nil {
			return nil, err
		}

		page, ok := decodePage(response)
		if !ok {
			// Nothing more to paginate; hand the raw response back without
			// re-interpretation
			return response, nil
		}
		data = append(data, page.data...)

		total, reported := page.total()
		if !reported {
			total = int64(len(data))
		}
		if int64(len(data)) >= total || int64(len(page.data)) < pageSize {
			return json.Marshal(merged{Data: emptyNotNil(data), TotalCount: total})
		}
		offset += int64(len(page.data))
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

type decodedPage struct {
	data     []json.RawMessage
	rawTotal json.RawMessage
}

// decodePage reports whether the response is shaped as { data: list, ... }.
func decodePage(response json.RawMessage) (decodedPage, bool) {
	var shape pageShape
	if err := json.Unmarshal(response, &shape); err != nil || shape.Data == nil {
		return decodedPage{}, false
	}
	return decodedPage{data: *shape.Data, rawTotal: shape.TotalCount}, true
}

// total returns the reported totalCount, or ok=false when absent or not
// numeric.
func (p decodedPage) total() (int64, bool) {
	if len(p.rawTotal) == 0 {
		return 0, false
	}
	var total int64
	if err := json.Unmarshal(p.rawTotal, &total); err != nil {
		return 0, false
	}
	return total, true
}

func emptyNotNil(data []json.RawMessage) []json.RawMessage {
	if data == nil {
		return []json.RawMessage{}
	}
	return data
}
