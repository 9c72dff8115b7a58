package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"storefront-core/internal/catalog"
	"storefront-core/internal/domain"
	"storefront-core/internal/locale"

	"github.com/gin-gonic/gin"
)

func requestLocale(c *gin.Context) string {
	loc := strings.TrimSpace(c.Query("locale"))
	if loc == "" {
		return locale.Default
	}
	return loc
}

func listProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
		products, total := cat.List(requestLocale(c), page, pageSize)
		c.JSON(http.StatusOK, gin.H{
			"data":     products,
			"page":     page,
			"pageSize": pageSize,
			"total":    total,
		})
	}
}

func productBySlugHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := cat.BySlug(c.Param("slug"), requestLocale(c))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

type createTicketRequest struct {
	Subject string `json:"subject" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Locale  string `json:"locale"`
}

func createTicketHandler(tickets *TicketStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "subject and text required"})
			return
		}
		ticket, err := tickets.Create(c.Request.Context(), req.Subject, req.Text, req.Locale)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create ticket failed"})
			return
		}
		c.JSON(http.StatusCreated, ticket)
	}
}

func ticketByIDHandler(tickets *TicketStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticket, err := tickets.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "load ticket failed"})
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}

type replyRequest struct {
	Text string `json:"text" binding:"required"`
}

func appendReplyHandler(tickets *TicketStore) gin.HandlerFunc {
	return replyHandler(tickets.AppendCustomerReply)
}

func appendAgentReplyHandler(tickets *TicketStore) gin.HandlerFunc {
	return replyHandler(tickets.AppendAgentReply)
}

func replyHandler(appendFn func(ctx context.Context, id, text string) (domain.Ticket, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req replyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text required"})
			return
		}
		ticket, err := appendFn(c.Request.Context(), c.Param("id"), req.Text)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			case errors.Is(err, ErrTicketClosed):
				c.JSON(http.StatusConflict, gin.H{"error": "ticket closed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "append reply failed"})
			}
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}

func closeTicketHandler(tickets *TicketStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticket, err := tickets.Close(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "close ticket failed"})
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}

type assistantRequest struct {
	Text   string `json:"text" binding:"required"`
	Locale string `json:"locale"`
}

// canned per-locale acknowledgements; the real assistant transport is an
// external collaborator
var assistantReplies = map[string]string{
	"en": "Thanks for your question! A specialist will follow up shortly.",
	"de": "Danke für Ihre Frage! Ein Spezialist meldet sich in Kürze.",
	"ar": "شكرًا على سؤالك! سيتواصل معك مختص قريبًا.",
}

func assistantReplyHandler(c *gin.Context) {
	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text required"})
		return
	}
	loc := req.Locale
	if _, ok := assistantReplies[loc]; !ok {
		loc = locale.Default
	}
	c.JSON(http.StatusOK, gin.H{"text": assistantReplies[loc]})
}
