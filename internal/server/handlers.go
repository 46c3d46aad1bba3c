package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/pages"
	"github.com/Zachkp/folio/internal/view"
)

// exportWorkCSV downloads the work table with the same filters as the page.
func (s *Server) exportWorkCSV(c *gin.Context) {
	f := pages.WorkFilterFrom(view.NavigationFrom(c))
	items := content.FilterWork(content.WorkItems(), f)

	name := "work-data-" + time.Now().Format("20060102") + ".csv"
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Status(http.StatusOK)
	if err := content.WriteWorkCSV(c.Writer, items); err != nil {
		s.log.Error("export work csv", "err", err)
	}
}

type contactResult struct {
	Message string
	Field   string
}

func (s *Server) contactForm(c *gin.Context) {
	s.fragment(c, http.StatusOK, "contact-form", nil)
}

// submitContact answers with an HTML fragment that replaces the form.
func (s *Server) submitContact(c *gin.Context) {
	err := s.mailer.Send(contact.Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	})

	var fe *contact.FieldError
	switch {
	case err == nil:
		s.fragment(c, http.StatusOK, "contact-success", contactResult{
			Message: "Thank you for your message! I'll get back to you soon.",
		})
	case errors.As(err, &fe):
		s.fragment(c, http.StatusUnprocessableEntity, "contact-error", contactResult{
			Message: "Please check the " + fe.Field + " field: it " + fe.Reason + ".",
			Field:   fe.Field,
		})
	default:
		if errors.Is(err, contact.ErrNotConfigured) {
			s.log.Warn("contact form submitted but SMTP is not configured")
		}
		s.fragment(c, http.StatusOK, "contact-error", contactResult{
			Message: "Sorry, there was an error sending your message. Please try again later.",
		})
	}
}
