package gallery

import (
	"log"
	"net/http"

	"github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
	apperrors "github.com/louisbranch/character-gallery/internal/services/gallery/platform/errors"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/httpx"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/pagerender"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/weberror"
	"github.com/louisbranch/character-gallery/internal/services/gallery/routepath"
	"github.com/louisbranch/character-gallery/internal/services/gallery/templates"
	"github.com/louisbranch/character-gallery/internal/services/gallery/view"
)

type handlers struct {
	client    characterapi.Client
	portraits templates.PortraitResolver
	logger    *log.Logger
}

func (h *handlers) gallery(w http.ResponseWriter, r *http.Request) {
	ui := i18n.ResolveCopy(w, r)
	page, ok := routepath.ParsePage(r.URL.Query().Get(routepath.PageQueryKey))
	if !ok {
		weberror.WriteNotFound(w, r, ui)
		return
	}

	state := view.NewGallery(h.client, h.logger, page).Mount(r.Context())
	h.write(w, r, ui, pagerender.Page{
		Title:      ui.PageTitle,
		StatusCode: apperrors.HTTPStatus(stateError(state.Status)),
		Fragment:   templates.GalleryFragment(templates.GalleryView{State: state, Copy: ui, Portraits: h.portraits}),
	})
}

func (h *handlers) detail(w http.ResponseWriter, r *http.Request) {
	ui := i18n.ResolveCopy(w, r)
	detail := view.NewDetail(h.client, h.logger)
	defer detail.Close()

	state := detail.SetRawID(r.Context(), r.PathValue("id"))
	title := ui.NotFound
	if state.Status != view.StatusNotFound {
		title = ui.DetailTitle(state.ID)
	}
	h.write(w, r, ui, pagerender.Page{
		Title:      title,
		StatusCode: apperrors.HTTPStatus(stateError(state.Status)),
		Fragment:   templates.DetailFragment(templates.DetailView{State: state, Copy: ui, Portraits: h.portraits}),
	})
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r, i18n.ResolveCopy(w, r))
}

func (h *handlers) write(w http.ResponseWriter, r *http.Request, ui i18n.Copy, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, ui, page); err != nil {
		h.logger.Printf("render page failed path=%s request_id=%s err=%v", r.URL.Path, httpx.RequestIDFromContext(r.Context()), err)
	}
}

// stateError is the app error a terminal view state carries, or nil.
func stateError(status view.Status) error {
	switch status {
	case view.StatusNotFound:
		return apperrors.EK(apperrors.KindNotFound, "gallery.not_found", "character not found")
	case view.StatusFailed:
		return apperrors.E(apperrors.KindUpstream, "character api read failed")
	default:
		return nil
	}
}
