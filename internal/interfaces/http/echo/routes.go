package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, fileHandler *FileHandler, prospectHandler *ProspectHandler) {
	api := server.Group("/api", RequireOwner)
	api.GET("/prospects", prospectHandler.ListProspects)
	api.POST("/prospects_files", fileHandler.UploadProspectsFile)
	api.POST("/prospects_files/:id/prospects", fileHandler.ImportProspects)
	api.GET("/prospects_files/:id/progress", fileHandler.GetImportProgress)
}
