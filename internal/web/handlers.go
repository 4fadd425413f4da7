package web

import (
	"errors"
	"net/http"

	"termfolio/internal/model"
	"termfolio/internal/shell"

	"github.com/gin-gonic/gin"
)

type tab struct {
	Name   string
	Title  string
	Icon   string
	Active bool
}

type skillGroup struct {
	Category string
	Skills   []model.Skill
}

func (s *Server) handleIndex(c *gin.Context) {
	section, history := s.snapshot()

	if name := c.Query("section"); name != "" {
		sec, err := model.ParseSection(name)
		if err != nil {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		section = sec
	}

	var tabs []tab
	for _, sec := range model.Sections() {
		tabs = append(tabs, tab{
			Name:   sec.String(),
			Title:  sec.Title(),
			Icon:   model.SectionIcon(sec),
			Active: sec == section,
		})
	}

	content := s.opts.Content
	var groups []skillGroup
	for _, cat := range content.SkillCategories() {
		groups = append(groups, skillGroup{Category: cat, Skills: content.SkillsIn(cat)})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":  content.Profile,
		"projects": content.Projects,
		"skills":   groups,
		"tabs":     tabs,
		"section":  section.String(),
		"history":  history,
		"light":    c.Query("theme") == "light",
		"version":  model.Version,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": model.Version})
}

func (s *Server) handleContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.opts.Content)
}

func (s *Server) handleTerminalState(c *gin.Context) {
	section, history := s.snapshot()
	c.JSON(http.StatusOK, gin.H{"section": section, "history": history})
}

type commandRequest struct {
	Command string `json:"command" binding:"max=256"`
}

func (s *Server) handleTerminalCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.session.SetPending(req.Command)
	res := s.session.Submit()
	section := s.session.Section()
	history := s.session.History()
	s.mu.Unlock()

	name := shell.Normalize(req.Command)
	if res.Kind == shell.Unrecognized {
		s.log.Infow("unrecognized command", "input", name)
	} else if s.opts.Store != nil {
		// Only known names reach the database
		if err := s.opts.Store.RecordCommand(c.Request.Context(), name); err != nil {
			s.log.Warnw("record command", "command", name, "error", err)
		}
	}

	var output string
	if res.Kind == shell.ShowOutput || res.Kind == shell.Unrecognized {
		output = res.Text
	}
	c.JSON(http.StatusOK, gin.H{
		"output":  output,
		"kind":    res.Kind.String(),
		"section": section,
		"history": history,
	})
}

type navigateRequest struct {
	Section string `json:"section" binding:"required"`
}

func (s *Server) handleNavigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sec, err := model.ParseSection(req.Section)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.session.Navigate(sec)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"section": sec})
}

func (s *Server) handleContact(c *gin.Context) {
	if s.opts.Mailer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact form is not configured"})
		return
	}

	var form ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.opts.Mailer.Send(c.Request.Context(), form); err != nil {
		s.log.Errorw("contact mail failed", "error", err)
		status := http.StatusBadGateway
		if errors.Is(err, ErrMailerNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": "Sorry, there was an error sending your message. Please try again later."})
		return
	}

	s.log.Infow("contact mail sent")
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

func (s *Server) handleStats(c *gin.Context) {
	if s.opts.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking is disabled"})
		return
	}
	stats, err := s.opts.Store.Stats(c.Request.Context())
	if err != nil {
		s.log.Errorw("stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// snapshot copies the shared session state under the lock.
func (s *Server) snapshot() (model.Section, []shell.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Section(), s.session.History()
}
