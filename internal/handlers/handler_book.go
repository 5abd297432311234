package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
	"github.com/boighar/backoffice/internal/middleware"
)

type bookHandler struct {
	bookService portssvc.BookSvcFacade
}

func newBookHandler(bs portssvc.BookSvcFacade) *bookHandler {
	return &bookHandler{bookService: bs}
}

func registerBookRoutes(rg *gin.RouterGroup, bs portssvc.BookSvcFacade) {
	h := newBookHandler(bs)
	books := rg.Group("/books")
	{
		books.POST("", h.createBook)
		books.GET("", h.listBooks)
		books.GET("/:bookID", h.getBook)
		books.PUT("/:bookID", h.updateBook)
	}
}

// createBook godoc
// @Summary Register a stocked title
// @Tags books
// @Accept json
// @Produce json
// @Param book body dto.CreateBookRequest true "Book details"
// @Success 201 {object} dto.BookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /books [post]
func (h *bookHandler) createBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), accountID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create book")
		return
	}

	logger.Info("Book created", slog.String("book_id", book.BookID))
	c.JSON(http.StatusCreated, dto.ToBookResponse(book))
}

// getBook godoc
// @Summary Get a book
// @Tags books
// @Produce json
// @Param bookID path string true "Book ID"
// @Success 200 {object} dto.BookResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /books/{bookID} [get]
func (h *bookHandler) getBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	book, err := h.bookService.GetBook(c.Request.Context(), accountID, c.Param("bookID"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to fetch book")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// listBooks godoc
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} dto.BookResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /books [get]
func (h *bookHandler) listBooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, _, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	books, err := h.bookService.ListBooks(c.Request.Context(), accountID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list books")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookResponses(books))
}

// updateBook godoc
// @Summary Update a book's metadata and prices
// @Description Stock is not writable here; it moves through sales, purchases and returns.
// @Tags books
// @Accept json
// @Produce json
// @Param bookID path string true "Book ID"
// @Param book body dto.UpdateBookRequest true "Fields to update"
// @Success 200 {object} dto.BookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /books/{bookID} [put]
func (h *bookHandler) updateBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accountID, userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	book, err := h.bookService.UpdateBook(c.Request.Context(), accountID, c.Param("bookID"), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update book")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}
