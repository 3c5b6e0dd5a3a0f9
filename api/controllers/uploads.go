package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/Thilina-Shamika/property-stable-sub000/api/responses"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
)

type fileSaver interface {
	Save(ctx context.Context, fileName string, src io.Reader) (string, error)
}

// UploadFile saves one multipart file and returns its served path. The
// off-plan admin UI uses this for assets that are not part of a listing's
// managed image set.
func UploadFile(store fileSaver, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "upload store unavailable"))
			return
		}

		if maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file part is required"))
			return
		}
		defer file.Close()

		path, err := store.Save(r.Context(), header.Filename, file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store upload"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"path": path})
	}
}
