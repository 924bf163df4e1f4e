package update

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/sanita/internal/domain/shop"
	"github.com/tesso57/sanita/internal/presentation/tui/nav"
	"github.com/tesso57/sanita/internal/presentation/tui/state"
)

var checkoutPlaceholders = [state.CheckoutFieldCount]string{
	state.FieldCardNumber:   "Card number",
	state.FieldCardMonth:    "MM",
	state.FieldCardYear:     "YYYY",
	state.FieldCardCVV:      "CVV",
	state.FieldAddress:      "Address",
	state.FieldStreetNumber: "Street number",
	state.FieldDNI:          "DNI",
}

var checkoutLimits = [state.CheckoutFieldCount]int{
	state.FieldCardNumber:   23,
	state.FieldCardMonth:    2,
	state.FieldCardYear:     4,
	state.FieldCardCVV:      4,
	state.FieldAddress:      120,
	state.FieldStreetNumber: 10,
	state.FieldDNI:          8,
}

// NewSearchInput creates the catalog search box.
func NewSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search plants"
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

// NewLoginForm creates the login inputs.
func NewLoginForm() state.LoginForm {
	email := textinput.New()
	email.Placeholder = "email@example.com"
	email.CharLimit = 128
	email.Width = 36

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 36

	return state.LoginForm{Email: email, Password: password}
}

// NewCheckoutForm creates the payment inputs in tab order.
func NewCheckoutForm() state.CheckoutForm {
	inputs := make([]textinput.Model, state.CheckoutFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = checkoutPlaceholders[i]
		ti.CharLimit = checkoutLimits[i]
		ti.Width = 36
		inputs[i] = ti
	}
	inputs[state.FieldCardCVV].EchoMode = textinput.EchoPassword
	inputs[state.FieldCardCVV].EchoCharacter = '•'
	return state.CheckoutForm{Inputs: inputs}
}

func resetLoginForm(f *state.LoginForm) {
	f.Email.Reset()
	f.Password.Reset()
	f.Password.Blur()
	f.Focus = 0
}

func handleSearchView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		s.SearchInput.SetValue("")
		s.SearchInput.Blur()
		s.Criteria = s.Criteria.WithSearch("")
		s.Session = state.ContentView
		RefreshContent(s, deps)
		return nil, true
	case tea.KeyEnter:
		s.SearchInput.Blur()
		s.Session = state.ContentView
		return nil, true
	}

	var cmd tea.Cmd
	s.SearchInput, cmd = s.SearchInput.Update(msg)
	s.Criteria = s.Criteria.WithSearch(s.SearchInput.Value())
	RefreshContent(s, deps)
	return cmd, true
}

func handleLoginView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		s.Login.Email.Blur()
		s.Login.Password.Blur()
		s.Session = s.Previous
		return nil, true
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		return focusLoginField(&s.Login, 1-s.Login.Focus), true
	case tea.KeyEnter:
		if s.Login.Focus == 0 {
			return focusLoginField(&s.Login, 1), true
		}
		email := s.Login.Email.Value()
		password := s.Login.Password.Value()
		s.Login.Email.Blur()
		s.Login.Password.Blur()
		s.Session = s.Previous
		s.Busy = true
		return tea.Batch(s.Spinner.Tick, LoginCmd(deps.Account, email, password)), true
	}

	var cmd tea.Cmd
	if s.Login.Focus == 0 {
		s.Login.Email, cmd = s.Login.Email.Update(msg)
	} else {
		s.Login.Password, cmd = s.Login.Password.Update(msg)
	}
	return cmd, true
}

func focusLoginField(f *state.LoginForm, field int) tea.Cmd {
	f.Focus = field
	if field == 0 {
		f.Password.Blur()
		return f.Email.Focus()
	}
	f.Email.Blur()
	return f.Password.Focus()
}

func openCheckout(s *state.ModelState) tea.Cmd {
	if _, ok := requireUser(s); !ok {
		return nil
	}
	lines, ok := s.Screens.Cart.State().Data()
	if !ok || len(lines) == 0 {
		s.StatusMessage = "Your cart is empty."
		return nil
	}
	s.Previous = s.Session
	s.Session = state.CheckoutView
	return focusCheckoutField(&s.Checkout, 0)
}

func handleCheckoutView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	form := &s.Checkout
	switch msg.Type {
	case tea.KeyEsc:
		form.Inputs[form.Focus].Blur()
		s.Session = s.Previous
		return nil, true
	case tea.KeyTab, tea.KeyDown:
		return focusCheckoutField(form, (form.Focus+1)%len(form.Inputs)), true
	case tea.KeyShiftTab, tea.KeyUp:
		return focusCheckoutField(form, (form.Focus+len(form.Inputs)-1)%len(form.Inputs)), true
	case tea.KeyEnter:
		if form.Focus < len(form.Inputs)-1 {
			return focusCheckoutField(form, form.Focus+1), true
		}
		return submitCheckout(s, deps), true
	}

	var cmd tea.Cmd
	form.Inputs[form.Focus], cmd = form.Inputs[form.Focus].Update(msg)
	return cmd, true
}

func focusCheckoutField(f *state.CheckoutForm, field int) tea.Cmd {
	for i := range f.Inputs {
		f.Inputs[i].Blur()
	}
	f.Focus = field
	return f.Inputs[field].Focus()
}

func submitCheckout(s *state.ModelState, deps Deps) tea.Cmd {
	uid, ok := requireUser(s)
	if !ok {
		return nil
	}
	req := CheckoutRequest(uid, s.Checkout)
	if err := req.Validate(); err != nil {
		s.StatusMessage = "Checkout: " + err.Error()
		return nil
	}

	s.Checkout.Inputs[s.Checkout.Focus].Blur()
	s.Checkout = NewCheckoutForm()
	s.Session = s.Previous
	s.Busy = true
	return tea.Batch(s.Spinner.Tick, MutationCmd("Checkout", nav.Cart, func(ctx context.Context) (shop.Ack, error) {
		return deps.Cart.Checkout(ctx, req)
	}))
}

// CheckoutRequest reads the form into a request. Unparsable expiry fields
// become zero and fail validation.
func CheckoutRequest(userID int, f state.CheckoutForm) shop.CheckoutRequest {
	value := func(field int) string {
		if field >= len(f.Inputs) {
			return ""
		}
		return strings.TrimSpace(f.Inputs[field].Value())
	}
	month, _ := strconv.Atoi(value(state.FieldCardMonth))
	year, _ := strconv.Atoi(value(state.FieldCardYear))
	return shop.CheckoutRequest{
		UserID:       userID,
		CardNumber:   strings.ReplaceAll(value(state.FieldCardNumber), " ", ""),
		CardMonth:    month,
		CardYear:     year,
		CardCVV:      value(state.FieldCardCVV),
		Address:      value(state.FieldAddress),
		StreetNumber: value(state.FieldStreetNumber),
		DNI:          value(state.FieldDNI),
	}
}
