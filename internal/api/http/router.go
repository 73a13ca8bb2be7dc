package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/http/handlers"
	"github.com/youthbridge/portal-service/internal/auth"
	"github.com/youthbridge/portal-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Applications   *handlers.ApplicationsHandler
	AdminApps      *handlers.AdminApplicationsHandler
	Stories        *handlers.StoriesHandler
	Content        *handlers.ContentHandler
	AdminContent   *handlers.AdminContentHandler
	AdminOrg       *handlers.AdminOrgHandler
	AdminUsers     *handlers.AdminUsersHandler
	Members        *handlers.MembersHandler
	Contact        *handlers.ContactHandler
	AuthMiddleware *auth.AuthMiddleware
	UploadsDir     string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.UploadsDir != "" {
		app.Static("/uploads", cfg.UploadsDir)
	}

	// Public site.
	app.Post("/auth/register", cfg.Auth.Register)
	app.Post("/auth/login", cfg.Auth.Login)
	app.Get("/activities", cfg.Content.ListActivities)
	app.Get("/activities/:slug", cfg.Content.GetActivity)
	app.Get("/gallery", cfg.Content.ListGallery)
	app.Get("/resources", cfg.Content.ListResources)
	app.Get("/resources/:slug", cfg.Content.GetResource)
	app.Get("/teams", cfg.Content.ListTeams)
	app.Get("/supporters", cfg.Content.ListSupporters)
	app.Get("/stories", cfg.Stories.ListPublished)
	app.Post("/stories", cfg.Stories.Submit)
	app.Post("/contact", cfg.Contact.Submit)

	// Authenticated users.
	user := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	user.Get("/auth/me", cfg.Auth.Me)
	user.Get("/applications", cfg.Applications.ListMine)
	user.Post("/applications/volunteer", cfg.Applications.SubmitVolunteer)
	user.Post("/applications/internship", cfg.Applications.SubmitInternship)
	user.Post("/applications/type-change", cfg.Applications.SubmitTypeChange)

	// Admin panel. Editors can manage content; review, accounts and the
	// registry stay admin-only.
	app.Use("/admin", cfg.AuthMiddleware.Handle)
	editorial := app.Group("/admin", auth.RequireRole(domain.UserRoleAdmin, domain.UserRoleEditor))
	editorial.Get("/activities", cfg.AdminContent.ListActivities)
	editorial.Post("/activities", cfg.AdminContent.CreateActivity)
	editorial.Put("/activities/:id", cfg.AdminContent.UpdateActivity)
	editorial.Delete("/activities/:id", cfg.AdminContent.DeleteActivity)
	editorial.Post("/gallery", cfg.AdminContent.UploadGalleryImage)
	editorial.Put("/gallery/:id", cfg.AdminContent.UpdateGalleryImage)
	editorial.Delete("/gallery/:id", cfg.AdminContent.DeleteGalleryImage)
	editorial.Post("/resources", cfg.AdminContent.CreateResource)
	editorial.Put("/resources/:id", cfg.AdminContent.UpdateResource)
	editorial.Delete("/resources/:id", cfg.AdminContent.DeleteResource)
	editorial.Post("/teams", cfg.AdminOrg.CreateTeam)
	editorial.Put("/teams/:id", cfg.AdminOrg.UpdateTeam)
	editorial.Delete("/teams/:id", cfg.AdminOrg.DeleteTeam)
	editorial.Post("/teams/:id/members", cfg.AdminOrg.AddTeamMember)
	editorial.Put("/team-members/:id", cfg.AdminOrg.UpdateTeamMember)
	editorial.Delete("/team-members/:id", cfg.AdminOrg.RemoveTeamMember)
	editorial.Post("/supporters", cfg.AdminOrg.CreateSupporter)
	editorial.Put("/supporters/:id", cfg.AdminOrg.UpdateSupporter)
	editorial.Delete("/supporters/:id", cfg.AdminOrg.DeleteSupporter)

	admin := app.Group("/admin", auth.RequireRole(domain.UserRoleAdmin))
	admin.Get("/applications", cfg.AdminApps.List)
	admin.Get("/applications/pending-counts", cfg.AdminApps.PendingCounts)
	admin.Get("/applications/:id", cfg.AdminApps.Get)
	admin.Post("/applications/:id/approve", cfg.AdminApps.Approve)
	admin.Post("/applications/:id/reject", cfg.AdminApps.Reject)
	admin.Delete("/applications/:id", cfg.AdminApps.Delete)
	admin.Get("/stories", cfg.Stories.ListForAdmin)
	admin.Post("/stories/:id/approve", cfg.Stories.Approve)
	admin.Post("/stories/:id/reject", cfg.Stories.Reject)
	admin.Post("/stories/:id/unpublish", cfg.Stories.Unpublish)
	admin.Delete("/stories/:id", cfg.Stories.Delete)
	admin.Get("/users", cfg.AdminUsers.List)
	admin.Get("/users/:id", cfg.AdminUsers.Get)
	admin.Put("/users/:id", cfg.AdminUsers.Update)
	admin.Post("/users/:id/deactivate", cfg.AdminUsers.Deactivate)
	admin.Delete("/users/:id", cfg.AdminUsers.Delete)
	admin.Get("/members", cfg.Members.List)
	admin.Post("/members", cfg.Members.Create)
	admin.Get("/members/:id", cfg.Members.Get)
	admin.Put("/members/:id", cfg.Members.Update)
	admin.Delete("/members/:id", cfg.Members.Delete)
	admin.Get("/contact-messages", cfg.Contact.List)
	admin.Get("/contact-messages/:id", cfg.Contact.Get)
	admin.Post("/contact-messages/:id/read", cfg.Contact.MarkRead)
	admin.Delete("/contact-messages/:id", cfg.Contact.Delete)
}
