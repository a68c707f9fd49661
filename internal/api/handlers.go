package api

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fountains/domain/core"
	"fountains/domain/fountain"
	"fountains/internal/testkit"
	"fountains/ports"
)

const maxFixtureLimit = 65536

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleFixtures serves raw generation mode: deterministic InputVectors
// with no bit extraction.
func (a *App) handleFixtures(w http.ResponseWriter, r *http.Request) {
	p, err := paramsFromQuery(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	if p.Limit == 0 || p.Limit > maxFixtureLimit {
		a.writeError(w, core.NewConfigurationError("limit", "must be between 1 and "+strconv.Itoa(maxFixtureLimit)))
		return
	}

	vectors, err := a.fixture.Generate(r.Context(), p)
	if err != nil {
		a.writeError(w, err)
		return
	}

	hexVectors := make([]string, len(vectors))
	for i, v := range vectors {
		hexVectors[i] = hex.EncodeToString(v)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"seed_hex": p.Seed.Hex(),
		"length":   p.Length,
		"limit":    p.Limit,
		"vectors":  hexVectors,
	})
}

type createSpecRequest struct {
	Label    string `json:"label"`
	SeedHex  string `json:"seed_hex"`
	Length   int    `json:"length"`
	Limit    int    `json:"limit"`
	Function string `json:"function,omitempty"`
	BitsHex  string `json:"bits_hex,omitempty"`
	BitCount int    `json:"bit_count,omitempty"`
}

// handleCreateSpec stores a specification. With "function" set it encodes a
// built-in reference function server-side; otherwise the client supplies
// the pre-encoded bits.
func (a *App) handleCreateSpec(w http.ResponseWriter, r *http.Request) {
	var req createSpecRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, core.NewConfigurationError("body", "invalid JSON"))
		return
	}

	seed, err := fountain.SeedFromHex(req.SeedHex)
	if err != nil {
		a.writeError(w, err)
		return
	}
	p := fountain.Params{Seed: seed, Length: req.Length, Limit: req.Limit}

	var rec *ports.SpecRecord
	if req.Function != "" {
		fn, ok := testkit.Function(req.Function)
		if !ok {
			a.writeError(w, core.NewConfigurationError("function", "unknown reference function"))
			return
		}
		label := req.Label
		if label == "" {
			label = req.Function
		}
		rec, err = a.encode.EncodeAndStore(r.Context(), p, fn, label)
	} else {
		rec, err = a.storeSuppliedBits(r, p, req)
	}
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (a *App) storeSuppliedBits(r *http.Request, p fountain.Params, req createSpecRequest) (*ports.SpecRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var spec fountain.Specification
	var err error
	if req.BitCount > 0 {
		spec, err = a.codec.DecodeBits(req.BitsHex, req.BitCount)
	} else {
		spec, err = a.codec.Decode(req.BitsHex)
	}
	if err != nil {
		return nil, err
	}
	if p.Limit != 0 && p.Limit != spec.Len() {
		return nil, core.ErrSpecLengthMismatch
	}

	rec := &ports.SpecRecord{
		ID:          core.SpecID(core.NewID()),
		Label:       req.Label,
		SeedHex:     p.Seed.Hex(),
		Length:      p.Length,
		Bits:        spec.Len(),
		PackedHex:   a.codec.Encode(spec),
		Fingerprint: spec.Fingerprint(),
		CreatedAt:   core.Now(),
	}
	if err := a.specs.CreateSpec(r.Context(), rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (a *App) handleListSpecs(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	specs, err := a.specs.ListSpecs(r.Context(), limit, offset)
	if err != nil {
		a.writeError(w, err)
		return
	}
	if specs == nil {
		specs = []*ports.SpecRecord{}
	}
	writeJSON(w, http.StatusOK, specs)
}

func (a *App) handleGetSpec(w http.ResponseWriter, r *http.Request) {
	rec, err := a.specs.GetSpec(r.Context(), core.SpecID(chi.URLParam(r, "id")))
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleSpecChecks serves the deferred verification inputs: the client
// applies its candidate to each input and submits the outputs to verify.
func (a *App) handleSpecChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := a.verify.Checks(r.Context(), core.SpecID(chi.URLParam(r, "id")))
	if err != nil {
		a.writeError(w, err)
		return
	}

	type checkPayload struct {
		Index    uint64 `json:"index"`
		InputHex string `json:"input_hex"`
	}
	payload := make([]checkPayload, len(checks))
	for i, c := range checks {
		payload[i] = checkPayload{Index: c.Index, InputHex: hex.EncodeToString(c.Input)}
	}
	writeJSON(w, http.StatusOK, payload)
}

type verifyRequest struct {
	FunctionLabel string   `json:"function_label"`
	Function      string   `json:"function,omitempty"`
	OutputsHex    []string `json:"outputs_hex,omitempty"`
}

type verifyResponse struct {
	Run     *ports.VerificationRun `json:"run"`
	Results []bool                 `json:"results"`
}

// handleVerifySpec verifies either a built-in reference function by name or
// a list of candidate outputs produced out-of-process.
func (a *App) handleVerifySpec(w http.ResponseWriter, r *http.Request) {
	specID := core.SpecID(chi.URLParam(r, "id"))

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, core.NewConfigurationError("body", "invalid JSON"))
		return
	}

	var run *ports.VerificationRun
	var results []bool
	var err error
	switch {
	case req.Function != "":
		fn, ok := testkit.Function(req.Function)
		if !ok {
			a.writeError(w, core.NewConfigurationError("function", "unknown reference function"))
			return
		}
		label := req.FunctionLabel
		if label == "" {
			label = req.Function
		}
		run, results, err = a.verify.VerifyStored(r.Context(), specID, fn, label)
	case len(req.OutputsHex) > 0:
		outputs := make([][]byte, len(req.OutputsHex))
		for i, h := range req.OutputsHex {
			outputs[i], err = hex.DecodeString(h)
			if err != nil {
				a.writeError(w, core.NewConfigurationError("outputs_hex", "invalid hex encoding"))
				return
			}
		}
		run, results, err = a.verify.VerifyOutputs(r.Context(), specID, outputs, req.FunctionLabel)
	default:
		a.writeError(w, core.NewConfigurationError("body", "either function or outputs_hex is required"))
		return
	}
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{Run: run, Results: results})
}

func (a *App) handleSpecRuns(w http.ResponseWriter, r *http.Request) {
	specID := core.SpecID(chi.URLParam(r, "id"))
	if _, err := a.specs.GetSpec(r.Context(), specID); err != nil {
		a.writeError(w, err)
		return
	}

	runs, err := a.specs.ListRuns(r.Context(), specID)
	if err != nil {
		a.writeError(w, err)
		return
	}
	if runs == nil {
		runs = []*ports.VerificationRun{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// paramsFromQuery reads stream parameters from query string. The seed may
// be given as seed_hex (raw bytes) or seed (decimal integer).
func paramsFromQuery(r *http.Request) (fountain.Params, error) {
	var seed fountain.Seed
	var err error
	switch {
	case r.URL.Query().Get("seed_hex") != "":
		seed, err = fountain.SeedFromHex(r.URL.Query().Get("seed_hex"))
	case r.URL.Query().Get("seed") != "":
		var n int64
		n, err = strconv.ParseInt(r.URL.Query().Get("seed"), 10, 64)
		if err != nil {
			return fountain.Params{}, core.NewConfigurationError("seed", "must be a decimal integer")
		}
		seed, err = fountain.SeedFromInt(n)
	default:
		seed = fountain.DefaultSeed()
	}
	if err != nil {
		return fountain.Params{}, err
	}

	return fountain.Params{
		Seed:   seed,
		Length: queryInt(r, "length", 32),
		Limit:  queryInt(r, "limit", 0),
	}, nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain error families to HTTP status codes.
func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
	case core.IsConfigurationError(err), core.IsValidationError(err), core.IsDomainError(err):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		a.log.Error("request failed: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
