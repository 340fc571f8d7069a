package services

import "io"

// ServiceContainer holds instances of all the application services.
// It is built once in main and handed to the handlers.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	Employee    EmployeeSvcFacade
	Catalog     CatalogSvcFacade
	Transaction TransactionSvcFacade
	Attachment  AttachmentSvcFacade
	Profile     ProfileSvcFacade
	Partner     PartnerSvcFacade
	Admin       AdminSvcFacade
	Report      ReportSvc
}

// FileUpload is an uploaded file as received by a handler. The handler owns Content and closes it.
type FileUpload struct {
	FileName string
	Size     int64
	Content  io.Reader
}
