package api

import (
	"github.com/tesso57/sanita/internal/domain/account"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
)

type plantDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"nombre"`
	Image    string `json:"imagen"`
	Price    int    `json:"precio"`
	Category int    `json:"categoria"`
}

func (d plantDTO) toDomain() catalog.Item {
	return catalog.Item{
		ID:         d.ID,
		Name:       d.Name,
		ImageRef:   d.Image,
		Price:      d.Price,
		CategoryID: d.Category,
	}
}

func plantsToDomain(in []plantDTO) []catalog.Item {
	out := make([]catalog.Item, len(in))
	for i, d := range in {
		out[i] = d.toDomain()
	}
	return out
}

type newsDTO struct {
	ID      int    `json:"id"`
	Title   string `json:"titulo"`
	Content string `json:"contenido"`
	Date    string `json:"fecha"`
	Image   string `json:"imagen"`
}

func (d newsDTO) toDomain() news.Item {
	return news.Item{
		ID:       d.ID,
		Title:    d.Title,
		Body:     d.Content,
		Date:     d.Date,
		ImageRef: d.Image,
	}
}

type summaryDTO struct {
	ID    int    `json:"id"`
	Title string `json:"titulo"`
	Image string `json:"imagen"`
}

type userDTO struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
	Role string `json:"rol"`
}

type loginDTO struct {
	Message string   `json:"mensaje"`
	User    *userDTO `json:"usuario"`
}

func (d loginDTO) toDomain() account.Session {
	s := account.Session{Message: d.Message}
	if d.User != nil {
		s.User = new(account.User{ID: d.User.ID, Name: d.User.Name, Role: d.User.Role})
	}
	return s
}

type ackDTO struct {
	Message string `json:"mensaje"`
}

type cartAddDTO struct {
	UserID   int `json:"usuarioId"`
	ItemID   int `json:"plantaId"`
	Quantity int `json:"cantidad"`
}

type quantityDTO struct {
	Quantity int `json:"cantidad"`
}

type cartLineDTO struct {
	ID       int     `json:"id"`
	UserID   int     `json:"usuarioId"`
	ItemID   int     `json:"plantaId"`
	Quantity int     `json:"cantidad"`
	Name     string  `json:"plantaNombre"`
	Image    string  `json:"plantaImagen"`
	Price    float64 `json:"plantaPrecio"`
}

func (d cartLineDTO) toDomain() shop.CartLine {
	return shop.CartLine{
		ID:       d.ID,
		UserID:   d.UserID,
		ItemID:   d.ItemID,
		Quantity: d.Quantity,
		Name:     d.Name,
		ImageRef: d.Image,
		Price:    d.Price,
	}
}

type checkoutDTO struct {
	UserID       int    `json:"usuarioId"`
	CardNumber   string `json:"tarjetaNumero"`
	CardMonth    int    `json:"tarjetaMes"`
	CardYear     int    `json:"tarjetaAno"`
	CardCVV      string `json:"tarjetaCvv"`
	Address      string `json:"direccion"`
	StreetNumber string `json:"numero"`
	DNI          string `json:"dni"`
}

func checkoutFromDomain(r shop.CheckoutRequest) checkoutDTO {
	return checkoutDTO{
		UserID:       r.UserID,
		CardNumber:   r.CardNumber,
		CardMonth:    r.CardMonth,
		CardYear:     r.CardYear,
		CardCVV:      r.CardCVV,
		Address:      r.Address,
		StreetNumber: r.StreetNumber,
		DNI:          r.DNI,
	}
}

type orderDTO struct {
	ID     int     `json:"id"`
	UserID int     `json:"usuarioId"`
	Total  float64 `json:"total"`
	Status string  `json:"estado"`
	Date   string  `json:"fecha"`
}

func (d orderDTO) toDomain() shop.Order {
	return shop.Order{
		ID:     d.ID,
		UserID: d.UserID,
		Total:  d.Total,
		Status: d.Status,
		Date:   d.Date,
	}
}
