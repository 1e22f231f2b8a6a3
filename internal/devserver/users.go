package devserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/myrecords/internal/devserver/auth"
	"github.com/dmitrijs2005/myrecords/internal/devserver/store"
)

const (
	msgRequired         = "This field must be filled"
	msgInvalidCPF       = "CPF must have 11 digits"
	msgInvalidPhone     = "Phone must be + followed by digits"
	msgEmailTaken       = "Email already registered"
	msgWrongPassword    = "Incorrect password"
	msgPasswordMismatch = "Passwords do not match"
)

type userRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CPF       string `json:"cpf"`
	Phone     string `json:"phone"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	CPF       string `json:"cpf,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func toUserResponse(u store.User) userResponse {
	return userResponse{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, CPF: u.CPF, Phone: u.Phone}
}

func (in userRequest) validate() []fieldError {
	var details []fieldError
	required := func(field, v string) {
		if strings.TrimSpace(v) == "" {
			details = append(details, fieldError{Type: field, Message: msgRequired})
		}
	}
	required("firstName", in.FirstName)
	required("lastName", in.LastName)
	required("email", in.Email)
	required("password", in.Password)

	if in.CPF != "" && (len(in.CPF) != 11 || !allDigits(in.CPF)) {
		details = append(details, fieldError{Type: "cpf", Message: msgInvalidCPF})
	}
	if in.Phone != "" && (len(in.Phone) < 2 || in.Phone[0] != '+' || !allDigits(in.Phone[1:])) {
		details = append(details, fieldError{Type: "phone", Message: msgInvalidPhone})
	}
	return details
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (in userRequest) toUser(id int64) store.User {
	return store.User{
		ID:        id,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		CPF:       in.CPF,
		Phone:     in.Phone,
	}
}

// register: POST /api/users
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in userRequest
	if err := decodeBody(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed body")
		return
	}
	if details := in.validate(); len(details) > 0 {
		writeDetails(w, http.StatusBadRequest, details)
		return
	}

	u, err := s.store.CreateUser(in.toUser(0), in.Password)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// login: POST /api/login
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeBody(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed body")
		return
	}
	var details []fieldError
	if strings.TrimSpace(in.Email) == "" {
		details = append(details, fieldError{Type: "email", Message: msgRequired})
	}
	if in.Password == "" {
		details = append(details, fieldError{Type: "password", Message: msgRequired})
	}
	if len(details) > 0 {
		writeDetails(w, http.StatusBadRequest, details)
		return
	}

	u, err := s.store.Authenticate(in.Email, in.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": map[string]string{"message": "Invalid email or password"}})
		return
	}
	token, err := auth.GenerateToken(u.ID, s.secret, s.tokenTTL)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: toUserResponse(u)})
}

// updateUser: PUT /api/users. The current password confirms the change.
func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id := userIDFrom(r.Context())

	var in userRequest
	if err := decodeBody(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed body")
		return
	}
	if details := in.validate(); len(details) > 0 {
		writeDetails(w, http.StatusBadRequest, details)
		return
	}
	ok, err := s.store.CheckPassword(id, in.Password)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	if !ok {
		writeDetails(w, http.StatusBadRequest, []fieldError{{Type: "password", Message: msgWrongPassword}})
		return
	}

	u, err := s.store.UpdateUser(in.toUser(id))
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type passwordRequest struct {
	Password           string `json:"password"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// updatePassword: PUT /api/users/account
func (s *Server) updatePassword(w http.ResponseWriter, r *http.Request) {
	id := userIDFrom(r.Context())

	var in passwordRequest
	if err := decodeBody(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed body")
		return
	}
	var details []fieldError
	for _, f := range []struct{ name, value string }{
		{"password", in.Password},
		{"newPassword", in.NewPassword},
		{"confirmNewPassword", in.ConfirmNewPassword},
	} {
		if f.value == "" {
			details = append(details, fieldError{Type: f.name, Message: msgRequired})
		}
	}
	if len(details) == 0 && in.NewPassword != in.ConfirmNewPassword {
		details = append(details, fieldError{Type: "confirmNewPassword", Message: msgPasswordMismatch})
	}
	if len(details) > 0 {
		writeDetails(w, http.StatusBadRequest, details)
		return
	}

	ok, err := s.store.CheckPassword(id, in.Password)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	if !ok {
		writeDetails(w, http.StatusBadRequest, []fieldError{{Type: "password", Message: msgWrongPassword}})
		return
	}
	if err := s.store.SetPassword(id, in.NewPassword); err != nil {
		s.storeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteUser: DELETE /api/users
func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteUser(userIDFrom(r.Context())); err != nil {
		s.storeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrEmailTaken):
		writeFieldError(w, http.StatusConflict, "email", msgEmailTaken)
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	default:
		s.internalError(w, r, err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error(r.Context(), "internal error", "path", r.URL.Path, "error", err)
	writeErrorString(w, http.StatusInternalServerError, "internal error")
}
