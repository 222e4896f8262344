package controllers

import (
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"nli/internal/metrics"
	"nli/internal/models"
	"nli/internal/providers"
	"nli/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	service services.InsightsServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.InsightsServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

// parseWindow resolves the range/from/to query parameters into a concrete
// window. from and to are read only for range=custom.
func parseWindow(r *http.Request) (models.DateWindow, error) {
	preset := metrics.Preset(r.URL.Query().Get("range"))
	if preset == "" {
		preset = metrics.PresetAll
	}

	var from, to *time.Time
	if preset == metrics.PresetCustom {
		f, errF := time.Parse("2006-01-02", r.URL.Query().Get("from"))
		t, errT := time.Parse("2006-01-02", r.URL.Query().Get("to"))
		if errF != nil || errT != nil {
			return models.DateWindow{}, errors.New("custom range requires from and to as YYYY-MM-DD")
		}
		from, to = &f, &t
	}

	return metrics.ResolveWindow(preset, from, to, time.Now())
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		ac.writeJSON(w, data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Compute failed for %s: %s", cacheKey, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	ac.writeJSON(w, gson)
}

func (ac *ApiController) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ac.serveFromCacheOrCompute(w, "snapshot:"+window.CacheKey(), func() (any, error) {
		start := time.Now()
		snap, err := ac.service.ComputeSnapshot(window)
		if err != nil {
			return nil, err
		}
		ac.metrics.ObserveSnapshotDuration(time.Since(start))
		return snap, nil
	})
}

func (ac *ApiController) GetChild(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cacheKey := "child:" + id + ":" + window.CacheKey()
	if data, ok := ac.cache.Get(cacheKey); ok {
		ac.writeJSON(w, data)
		return
	}

	report, err := ac.service.LookupChild(id, window)
	if errors.Is(err, services.ErrChildNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Child lookup failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(report)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Set(cacheKey, gson)
	ac.writeJSON(w, gson)
}

func (ac *ApiController) ExportAccounts(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "export:accounts:"+window.CacheKey(), func() (any, error) {
		return ac.service.ExportAccounts(window)
	})
}

func (ac *ApiController) ExportChildren(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "export:children:"+window.CacheKey(), func() (any, error) {
		return ac.service.ExportChildren(window)
	})
}

func (ac *ApiController) ExportEvents(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "export:events:"+window.CacheKey(), func() (any, error) {
		return ac.service.ExportEvents(window)
	})
}
