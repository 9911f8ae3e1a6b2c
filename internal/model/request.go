package model

// CodeRequest carries the URI parameters of endpoints addressing one record.
type CodeRequest struct {
	DBSize string `uri:"dbsize" binding:"required"`
	Code   string `uri:"code" binding:"required,max=64,recordcode"`
}

// DatasetRequest carries the URI parameters of the dataset-wide endpoints.
type DatasetRequest struct {
	DBSize string `uri:"dbsize" binding:"required"`
}
