package model

type DashboardStats struct {
	ProductCount  int64 `json:"product_count"`
	CategoryCount int64 `json:"category_count"`
	UserCount     int64 `json:"user_count"`
	LowStockCount int64 `json:"low_stock_count"`
}

type UploadResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
