// Package batch executes multi-item mutations safely: size ceilings before
// any network traffic, first-seen dedup, per-item local validation, and a
// single partial-failure mutate whose outcome is merged back positionally
package batch

import (
	"context"
	"strings"

	"adsbridge/internal/gads/client"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/platform/logger"

	"github.com/google/uuid"
)

// Kind names a batch operation family and selects its ceiling and identity key
type Kind string

const (
	KindKeywordAdd       Kind = "keyword_add"
	KindAssetAdd         Kind = "asset_add"
	KindConversionImport Kind = "conversion_import"
	KindStatusSet        Kind = "status_set"
)

// ceilings are the maximum item counts per kind, enforced before any
// remote call
var ceilings = map[Kind]int{
	KindKeywordAdd:       5000,
	KindAssetAdd:         5000,
	KindConversionImport: 2000,
	KindStatusSet:        100,
}

// Ceiling returns the item cap for a kind, zero for unknown kinds
func Ceiling(k Kind) int { return ceilings[k] }

// Item is one unit of a batch. Key is the dedup identity under the kind's
// rules; Validate runs the local grammar; Operation renders the REST
// mutate operation for the acting customer
type Item interface {
	Key() string
	Validate() error
	Operation(customerID string) (client.Operation, error)
}

// Options tunes an execution
type Options struct {
	// ValidateOnly runs server-side validation without applying anything
	ValidateOnly bool
}

// Outcome is the terminal state of one submitted item
type Outcome struct {
	Index        int    `json:"index"`
	Key          string `json:"key,omitempty"`
	ResourceName string `json:"resource_name,omitempty"`
	Error        string `json:"error,omitempty"`
	// DuplicateOf points at the first occurrence this item collapsed into
	DuplicateOf *int `json:"duplicate_of,omitempty"`
}

// Result covers every submitted item exactly once across Succeeded and
// Failed. Duplicates mirror the outcome of their first occurrence
type Result struct {
	BatchID    string    `json:"batch_id"`
	Kind       Kind      `json:"kind"`
	Submitted  int       `json:"submitted"`
	Duplicates int       `json:"duplicates"`
	Succeeded  []Outcome `json:"succeeded"`
	Failed     []Outcome `json:"failed"`
}

// Execute runs one batch. The ceiling check happens before anything leaves
// the process; items failing local validation are recorded without aborting
// the rest; all surviving operations go out in one partial-failure mutate.
// Nothing is published until the merge accounts for every item
func Execute(
	ctx context.Context,
	tr client.Transport,
	kind Kind,
	customerID string,
	items []Item,
	opts Options,
) (*Result, error) {
	max, ok := ceilings[kind]
	if !ok {
		return nil, perr.Validationf("unknown batch kind %q", string(kind))
	}
	if len(items) == 0 {
		return nil, perr.WithField(perr.Validationf("batch must contain at least one item"), "items")
	}
	if len(items) > max {
		return nil, perr.BatchTooLargef("batch of %d exceeds the %s ceiling of %d items",
			len(items), kind, max)
	}

	res := &Result{
		BatchID:   uuid.NewString(),
		Kind:      kind,
		Submitted: len(items),
	}

	// terminal outcome per submitted index, filled as phases complete
	outcomes := make([]*Outcome, len(items))

	// first-seen dedup under the kind's identity key
	firstSeen := make(map[string]int, len(items))
	dupOf := make(map[int]int)

	// ops and the submitted index each op position maps back to
	var ops []client.Operation
	opIndex := make([]int, 0, len(items))

	for i, it := range items {
		key := it.Key()
		if first, seen := firstSeen[key]; seen {
			res.Duplicates++
			dupOf[i] = first
			continue
		}
		firstSeen[key] = i

		if err := it.Validate(); err != nil {
			outcomes[i] = &Outcome{Index: i, Key: key, Error: perr.WireFrom(err).Message}
			continue
		}
		op, err := it.Operation(customerID)
		if err != nil {
			outcomes[i] = &Outcome{Index: i, Key: key, Error: perr.WireFrom(err).Message}
			continue
		}
		ops = append(ops, op)
		opIndex = append(opIndex, i)
	}

	if len(ops) > 0 {
		resp, err := tr.Mutate(ctx, customerID, ops, client.MutateOptions{
			PartialFailure: true,
			ValidateOnly:   opts.ValidateOnly,
		})
		if err != nil {
			return nil, err
		}

		failedOps := make(map[int]string, len(resp.ItemErrors))
		var unmatched []string
		for _, ie := range resp.ItemErrors {
			if ie.Index >= 0 && ie.Index < len(ops) {
				failedOps[ie.Index] = ie.Message
				continue
			}
			// the server reported a failure it did not pin to an operation;
			// it must not disappear into a success report
			unmatched = append(unmatched, ie.Message)
		}
		unmatchedMsg := strings.Join(unmatched, "; ")
		for pos, idx := range opIndex {
			if msg, bad := failedOps[pos]; bad {
				outcomes[idx] = &Outcome{Index: idx, Key: items[idx].Key(), Error: msg}
				continue
			}
			if unmatchedMsg != "" {
				outcomes[idx] = &Outcome{Index: idx, Key: items[idx].Key(), Error: unmatchedMsg}
				continue
			}
			name := ""
			if pos < len(resp.Results) {
				name = resp.Results[pos].ResourceName
			}
			outcomes[idx] = &Outcome{Index: idx, Key: items[idx].Key(), ResourceName: name}
		}
	}

	// duplicates inherit the terminal state of their first occurrence
	for i, first := range dupOf {
		src := outcomes[first]
		o := &Outcome{Index: i, Key: items[i].Key(), DuplicateOf: &first}
		if src != nil {
			o.ResourceName = src.ResourceName
			o.Error = src.Error
		}
		outcomes[i] = o
	}

	for _, o := range outcomes {
		if o == nil {
			continue
		}
		if o.Error != "" {
			res.Failed = append(res.Failed, *o)
		} else {
			res.Succeeded = append(res.Succeeded, *o)
		}
	}

	logger.C(ctx).Info().
		Str("batch_id", res.BatchID).
		Str("kind", string(kind)).
		Int("submitted", res.Submitted).
		Int("duplicates", res.Duplicates).
		Int("succeeded", len(res.Succeeded)).
		Int("failed", len(res.Failed)).
		Msg("batch executed")

	return res, nil
}
