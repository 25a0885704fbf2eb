package routes

import (
	"corpculture/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDrafts    = "/drafts"
	PathDocuments = "/documents"
	PathOptions   = "/options"
	PathSequence  = "/sequence"
	PathDashboard = "/dashboard"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	draftHandler *handlers.DraftHandler,
	listingHandler *handlers.ListingHandler,
	sequenceHandler *handlers.SequenceHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.CreateDraft)
		drafts.GET("/:id", draftHandler.GetDraft)
		drafts.DELETE("/:id", draftHandler.DiscardDraft)
		drafts.PATCH("/:id/header", draftHandler.SetHeaderField)
		drafts.POST("/:id/items", draftHandler.AddLineItem)
		drafts.PATCH("/:id/items/:rowID", draftHandler.UpdateLineItem)
		drafts.DELETE("/:id/items/:rowID", draftHandler.RemoveLineItem)
		drafts.POST("/:id/groups", draftHandler.AddGroup)
		drafts.DELETE("/:id/groups/:groupID", draftHandler.RemoveGroup)
		drafts.POST("/:id/reset", draftHandler.ResetDraft)
		drafts.POST("/:id/submit", draftHandler.SubmitDraft)
	}

	documents := rg.Group(PathDocuments)
	{
		documents.GET("/:resource", listingHandler.ListDocuments)
	}

	options := rg.Group(PathOptions)
	{
		options.GET("/:resource", listingHandler.ScopedOptions)
	}

	sequence := rg.Group(PathSequence)
	{
		sequence.GET("/:resource", sequenceHandler.NextDocumentNumber)
	}

	rg.GET(PathDashboard, dashboardHandler.Summary)
}
