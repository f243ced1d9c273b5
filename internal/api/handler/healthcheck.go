package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/valuation-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
