package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/sanita/internal/domain/shop"
)

type recorded struct {
	mu      sync.Mutex
	headers []http.Header
	bodies  []string
}

func (r *recorded) add(req *http.Request) {
	body, _ := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headers = append(r.headers, req.Header.Clone())
	r.bodies = append(r.bodies, string(body))
}

func (r *recorded) last() (http.Header, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.headers[len(r.headers)-1], r.bodies[len(r.bodies)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestServer(t *testing.T) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			rec.add(req)
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/api/plantas", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "nombre": "Aloe Vera", "imagen": "aloe-vera.png", "precio": 12, "categoria": 1},
			{"id": 2, "nombre": "Uña de gato", "imagen": "una_de_gato.jpg", "precio": 20, "categoria": 2},
		})
	})
	r.Get("/api/plantas/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != "2" {
			writeJSON(w, http.StatusNotFound, map[string]string{"mensaje": "Planta no encontrada"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 2, "nombre": "Uña de gato", "imagen": "una_de_gato.jpg", "precio": 20, "categoria": 2})
	})
	r.Get("/api/informacion", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 9, "nombre": req.URL.Query().Get("nombre"), "precio": 5, "categoria": 1})
	})
	r.Get("/api/plantas/categoria/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 2, "nombre": "Uña de gato", "categoria": 2}})
	})
	r.Get("/api/noticias", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 3, "titulo": "Plantas", "contenido": "<p>Hola</p>", "fecha": "2024-05-01", "imagen": "n.png"}})
	})
	r.Get("/api/noticia/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 3, "titulo": "Plantas"})
	})
	r.Get("/api/resumen-inicio", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "titulo": "Bienvenido", "imagen": "banner.png"}})
	})
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		if req.FormValue("contrasena") != "ok" {
			writeJSON(w, http.StatusOK, map[string]any{"mensaje": "Credenciales incorrectas"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"mensaje": "Bienvenido",
			"usuario": map[string]any{"id": 7, "nombre": "Ana", "rol": "cliente"},
		})
	})
	r.Post("/api/carrito", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"mensaje": "Agregado al carrito"})
	})
	r.Get("/api/carrito/{user}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "usuarioId": 7, "plantaId": 2, "cantidad": 3, "plantaNombre": "Uña de gato", "plantaImagen": "una.png", "plantaPrecio": 20.5},
		})
	})
	r.Put("/api/carrito/{user}/{item}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"mensaje": "Cantidad actualizada"})
	})
	r.Delete("/api/carrito/{user}/{item}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Delete("/api/carrito/usuario/{user}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "Carrito vaciado")
	})
	r.Post("/api/pago", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"mensaje": "Pago exitoso"})
	})
	r.Get("/api/pedidos/{user}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 4, "usuarioId": 7, "total": 41, "estado": "pendiente", "fecha": "2024-05-02"}})
	})
	r.Put("/api/pedidos/{order}/recibido", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"mensaje": "Pedido recibido"})
	})
	r.Get("/api/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "not json")
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	logger, _ := test.NewNullLogger()
	client := New(Options{BaseURL: srv.URL + "/", UserAgent: "sanita-test", Timeout: 5 * time.Second, Logger: logger})
	t.Cleanup(func() { _ = client.Close() })
	return client, rec
}

func TestClient_Catalog(t *testing.T) {
	client, rec := newTestServer(t)
	ctx := context.Background()

	items, err := client.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Aloe Vera", items[0].Name)
	assert.Equal(t, "aloe-vera.png", items[0].ImageRef)
	assert.Equal(t, 12, items[0].Price)
	assert.Equal(t, 2, items[1].CategoryID)

	headers, _ := rec.last()
	assert.Equal(t, "sanita-test", headers.Get("User-Agent"))
	assert.Equal(t, "application/json", headers.Get("Accept"))
	_, err = uuid.Parse(headers.Get("X-Request-ID"))
	assert.NoError(t, err, "X-Request-ID should be a uuid")

	item, err := client.GetItem(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Uña de gato", item.Name)

	found, err := client.SearchItem(ctx, "Maca")
	require.NoError(t, err)
	assert.Equal(t, "Maca", found.Name)

	byCat, err := client.ListItemsByCategory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byCat, 1)
}

func TestClient_RequestIDsDiffer(t *testing.T) {
	client, rec := newTestServer(t)
	ctx := context.Background()

	_, err := client.ListItems(ctx)
	require.NoError(t, err)
	first, _ := rec.last()
	_, err = client.ListItems(ctx)
	require.NoError(t, err)
	second, _ := rec.last()

	assert.NotEqual(t, first.Get("X-Request-ID"), second.Get("X-Request-ID"))
}

func TestClient_NotFound(t *testing.T) {
	client, _ := newTestServer(t)

	_, err := client.GetItem(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Planta no encontrada", se.Body)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_DecodeError(t *testing.T) {
	client, _ := newTestServer(t)

	var out []plantDTO
	err := client.do(context.Background(), call{method: http.MethodGet, path: "/api/broken"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_Cancelled(t *testing.T) {
	client, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListItems(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_News(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	list, err := client.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "<p>Hola</p>", list[0].Body)
	assert.Equal(t, "2024-05-01", list[0].Date)

	one, err := client.GetNews(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Plantas", one.Title)

	highlights, err := client.ListHighlights(ctx)
	require.NoError(t, err)
	require.Len(t, highlights, 1)
	assert.Equal(t, "banner.png", highlights[0].ImageRef)
}

func TestClient_Login(t *testing.T) {
	client, rec := newTestServer(t)
	ctx := context.Background()

	session, err := client.Login(ctx, "ana@example.com", "ok")
	require.NoError(t, err)
	require.True(t, session.Authenticated())
	assert.Equal(t, 7, session.User.ID)
	assert.Equal(t, "Ana", session.User.Name)

	headers, body := rec.last()
	assert.Contains(t, headers.Get("Content-Type"), "application/x-www-form-urlencoded")
	assert.Contains(t, body, "correo=ana%40example.com")

	rejected, err := client.Login(ctx, "ana@example.com", "bad")
	require.NoError(t, err)
	assert.False(t, rejected.Authenticated())
	assert.Equal(t, "Credenciales incorrectas", rejected.Message)
}

func TestClient_Cart(t *testing.T) {
	client, rec := newTestServer(t)
	ctx := context.Background()

	ack, err := client.AddToCart(ctx, 7, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "Agregado al carrito", ack.Message)
	_, body := rec.last()
	assert.JSONEq(t, `{"usuarioId":7,"plantaId":2,"cantidad":3}`, body)

	lines, err := client.GetCart(ctx, 7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Uña de gato", lines[0].Name)
	assert.InDelta(t, 61.5, lines[0].Subtotal(), 0.001)

	ack, err = client.UpdateCartItem(ctx, 7, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "Cantidad actualizada", ack.Message)
	_, body = rec.last()
	assert.JSONEq(t, `{"cantidad":5}`, body)

	ack, err = client.DeleteCartItem(ctx, 7, 2)
	require.NoError(t, err)
	assert.Empty(t, ack.Message)

	_, err = client.ClearCart(ctx, 7)
	require.NoError(t, err)
}

func TestClient_CheckoutAndOrders(t *testing.T) {
	client, rec := newTestServer(t)
	ctx := context.Background()

	ack, err := client.Checkout(ctx, shop.CheckoutRequest{
		UserID:       7,
		CardNumber:   "4111111111111111",
		CardMonth:    12,
		CardYear:     2030,
		CardCVV:      "123",
		Address:      "Av. Sol",
		StreetNumber: "100",
		DNI:          "12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pago exitoso", ack.Message)
	_, body := rec.last()
	assert.JSONEq(t, `{"usuarioId":7,"tarjetaNumero":"4111111111111111","tarjetaMes":12,"tarjetaAno":2030,"tarjetaCvv":"123","direccion":"Av. Sol","numero":"100","dni":"12345678"}`, body)

	orders, err := client.ListOrders(ctx, 7)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "pendiente", orders[0].Status)
	assert.False(t, orders[0].Received())

	ack, err = client.MarkOrderReceived(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Pedido recibido", ack.Message)
}

func TestClient_LogsRequests(t *testing.T) {
	rec := &recorded{}
	r := chi.NewRouter()
	r.Get("/api/plantas", func(w http.ResponseWriter, req *http.Request) {
		rec.add(req)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	client := New(Options{BaseURL: srv.URL, Logger: logger})

	_, err := client.ListItems(context.Background())
	require.Error(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	headers, _ := rec.last()
	assert.Equal(t, headers.Get("X-Request-ID"), entry.Data["request_id"])
	assert.Equal(t, 500, entry.Data["status"])
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", errorMessage("  "))
	assert.Equal(t, "nope", errorMessage(`{"mensaje":"nope"}`))
	assert.Equal(t, "bad", errorMessage(`{"error":"bad"}`))
	assert.Equal(t, "plain text", errorMessage("plain text"))
}

func TestErrorMessage_TruncatesOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("a", 199) + "ñandú no encontrado"
	got := errorMessage(body)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 199)+"ñ...", got)

	assert.Equal(t, "plant\uFFFD", errorMessage("plant\xff"))
}
