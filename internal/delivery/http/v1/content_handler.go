package v1

import (
	"errors"
	"net/http"

	"cavaltron-backend/internal/delivery/http/response"
	"cavaltron-backend/internal/domain"
	"cavaltron-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the read-only content routes
func NewContentHandler(public *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{
		contentUC: contentUC,
	}

	public.GET("/content/:section", handler.GetSection)
	public.GET("/contact-info", handler.ListContactInfo)
	public.GET("/skills", handler.ListSkills)
	public.GET("/projects", handler.ListProjects)
	public.GET("/page", handler.GetPage)
}

// GetSection godoc
// @Summary      Get a page section
// @Description  Title, content and call to action of a section, with defaults for missing fields
// @Tags         content
// @Produce      json
// @Param        section  path      string  true  "Section name (hero, about)"
// @Success      200      {object}  response.Response{data=domain.SectionView}
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /content/{section} [get]
func (h *ContentHandler) GetSection(c *gin.Context) {
	section, err := h.contentUC.GetSection(c.Request.Context(), c.Param("section"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Section not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Section retrieved", section)
}

// ListContactInfo godoc
// @Summary      List contact channels
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ContactChannelView}
// @Failure      500  {object}  response.Response
// @Router       /contact-info [get]
func (h *ContentHandler) ListContactInfo(c *gin.Context) {
	channels, err := h.contentUC.ListContactChannels(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact channels retrieved", channels)
}

// ListSkills godoc
// @Summary      List skills in display order
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SkillView}
// @Failure      500  {object}  response.Response
// @Router       /skills [get]
func (h *ContentHandler) ListSkills(c *gin.Context) {
	skills, err := h.contentUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// ListProjects godoc
// @Summary      List projects in display order
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ProjectView}
// @Failure      500  {object}  response.Response
// @Router       /projects [get]
func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.contentUC.ListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// GetPage godoc
// @Summary      Get the whole page
// @Description  Hero, about, skills, projects and contact channels in one call
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Page}
// @Failure      500  {object}  response.Response
// @Router       /page [get]
func (h *ContentHandler) GetPage(c *gin.Context) {
	page, err := h.contentUC.GetPage(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Page retrieved", page)
}
