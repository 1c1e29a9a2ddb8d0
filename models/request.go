package models

import "time"

// ContactRequest is a message submitted through the storefront contact form.
type ContactRequest struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `gorm:"default:'Pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GraphicsRequest is a custom graphics quote request.
type GraphicsRequest struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Email             string    `gorm:"not null" json:"email"`
	Phone             string    `json:"phone"`
	BikeModel         string    `gorm:"not null" json:"bike_model"`
	BikeYear          string    `json:"bike_year"`
	DesignType        string    `json:"design_type"`
	DesignDescription string    `gorm:"type:text" json:"design_description"`
	Budget            string    `json:"budget"`
	Timeline          string    `json:"timeline"`
	Status            string    `gorm:"default:'Pending'" json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}
