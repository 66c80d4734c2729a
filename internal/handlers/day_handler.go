package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/weekday"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
)

type DayDTO struct {
	Day   weekday.Day `json:"day"`
	Order int         `json:"order"`
	Label string      `json:"label"`
}

// ListDays returns Monday..Sunday labelled in the request language.
func ListDays(c *gin.Context) {
	lang := httperr.Lang(c)

	days := weekday.All()
	out := make([]DayDTO, 0, len(days))
	for _, d := range days {
		out = append(out, DayDTO{Day: d, Order: d.Order(), Label: d.Label(lang)})
	}

	httpresp.List(c, out)
}

// TranslateDay maps ?name= from either language into ?lang=.
func TranslateDay(c *gin.Context) {
	name, err := weekday.Translate(c.Query("name"), httperr.Lang(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"name": name})
}
