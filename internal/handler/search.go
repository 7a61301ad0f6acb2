package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-reservation/internal/repository"
)

// SearchHandler serves the station directory and the train search.  Search
// runs against the static timetable; the artificial delay stands in for the
// backend round trip of the reference behavior.
type SearchHandler struct {
	Trains *repository.TrainRepo
	Delay  time.Duration
}

func NewSearchHandler(trains *repository.TrainRepo, delay time.Duration) *SearchHandler {
	return &SearchHandler{Trains: trains, Delay: delay}
}

// GetStations returns the full station directory.
func (h *SearchHandler) GetStations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Trains.Stations())
}

// GetTrains returns the whole timetable.
func (h *SearchHandler) GetTrains(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Trains.All())
}

// GetTrain returns one train by id.
func (h *SearchHandler) GetTrain(c echo.Context) error {
	t, ok := h.Trains.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
	}
	return c.JSON(http.StatusOK, t)
}

// Search handles GET /v1/trains/search?source=&destination=&class=&date=.
// Both stations are required and must differ; the date, when given, must be
// YYYY-MM-DD and not in the past.  Matching is the union described on
// TrainRepo.Search: source OR destination, code or name.
func (h *SearchHandler) Search(c echo.Context) error {
	source := strings.TrimSpace(c.QueryParam("source"))
	destination := strings.TrimSpace(c.QueryParam("destination"))
	if source == "" || destination == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "source and destination are required"})
	}
	if strings.EqualFold(source, destination) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "source and destination cannot be the same"})
	}
	if date := c.QueryParam("date"); date != "" {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
		}
		today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
		if d.Before(today) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date cannot be in the past"})
		}
	}

	time.Sleep(h.Delay) // simulated search latency

	results := h.Trains.Search(source, destination, c.QueryParam("class"))
	return c.JSON(http.StatusOK, echo.Map{
		"trains": results,
		"count":  len(results),
	})
}
