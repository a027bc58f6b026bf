package applications

type CreateApplicationRequest struct {
	BrandName     string `json:"brandName" binding:"required,min=1,max=255"`
	ContactPerson string `json:"contactPerson" binding:"required,max=255"`
	Phone         string `json:"phone" binding:"omitempty,max=32"`
	Email         string `json:"email" binding:"omitempty,email"`
	Description   string `json:"description" binding:"omitempty,max=2000"`
	RequestedSize string `json:"zone" binding:"required,spotsize"`
	ZoneCategory  string `json:"zoneCategory" binding:"omitempty,zonecategory"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,appstatus"`
}
