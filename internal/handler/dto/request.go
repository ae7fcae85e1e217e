package dto

type CreateEventRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	LocationType string   `json:"location_type" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	Time         string   `json:"time" binding:"required"`
	Capacity     int      `json:"capacity" binding:"required,gt=0"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	Image        string   `json:"image"`
}

type UpdateEventRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Location     *string  `json:"location"`
	LocationType *string  `json:"location_type"`
	Date         *string  `json:"date"`
	Time         *string  `json:"time"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	Image        *string  `json:"image"`
}

type BookRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
	Seats   int    `json:"seats" binding:"required,min=1,max=2"`
}
