package handlers

import (
	"net/http"
	"strconv"

	"penlink/internal/services"
	"penlink/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// writeError servis hatasını HTTP durumuna çevirir. Sınıflandırılmamış hatalar
// mesajıyla birlikte 500 olarak döner.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindValidation:
		status = http.StatusBadRequest
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindUnauthorized:
		status = http.StatusUnauthorized
	case services.KindForbidden:
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		log.Error("İstek işlenemedi", zap.Error(err))
	} else {
		log.Warn("İstek reddedildi", zap.Int("status", status), zap.String("reason", err.Error()))
	}
	helpers.Error(w, status, err.Error())
}

// pathID rota değişkenini pozitif int64 olarak okur; hatalıysa 400 yazar.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		helpers.Error(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
