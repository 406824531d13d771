package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/zhixunlab/consult-booking/internal/models"
	"github.com/zhixunlab/consult-booking/internal/routes"
	"github.com/zhixunlab/consult-booking/internal/sms"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestAPI(t *testing.T) (*gin.Engine, *sms.CodeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Booking{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	codes := sms.NewCodeStore(5 * time.Minute)

	r := gin.New()
	routes.RegisterRoutesWith(r, db, codes, sms.NewDispatcher(sms.LogSender{}))
	return r, codes
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: bad response body %q: %v", method, path, w.Body.String(), err)
	}
	return w, env
}

// registerUser seeds a code and registers an account, returning its id.
func registerUser(t *testing.T, r http.Handler, codes *sms.CodeStore, phone, password string) uint {
	t.Helper()

	codes.Set(phone, "123456")
	w, env := do(t, r, http.MethodPost, "/api/register", gin.H{
		"phone":    phone,
		"password": password,
		"code":     "123456",
	})
	if w.Code != 200 {
		t.Fatalf("register %s: status %d, message %q", phone, w.Code, env.Message)
	}

	var user struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return user.ID
}

// ======================================================
// AUTH
// ======================================================

func TestRegisterFlow(t *testing.T) {
	r, codes := newTestAPI(t)

	w, env := do(t, r, http.MethodPost, "/api/send_code", gin.H{"phone": "13800001234"})
	if w.Code != 200 || env.Message != "验证码发送成功" {
		t.Fatalf("send_code: status %d, message %q", w.Code, env.Message)
	}

	code, ok := codes.Get("13800001234")
	if !ok {
		t.Fatal("send_code stored no code")
	}
	if len(code) != 6 {
		t.Fatalf("code %q: want 6 digits", code)
	}
	seen := map[byte]bool{}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' || seen[code[i]] {
			t.Fatalf("code %q: digits must be distinct numerics", code)
		}
		seen[code[i]] = true
	}

	w, env = do(t, r, http.MethodPost, "/api/register", gin.H{
		"phone":    "13800001234",
		"password": "secret1",
		"code":     code,
	})
	if w.Code != 200 {
		t.Fatalf("register: status %d, message %q", w.Code, env.Message)
	}
	if env.Code != 200 {
		t.Fatalf("envelope code = %d, want 200", env.Code)
	}

	var user struct {
		ID        uint   `json:"id"`
		Phone     string `json:"phone"`
		Name      string `json:"name"`
		CreatedAt string `json:"created_at"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Phone != "13800001234" {
		t.Fatalf("phone = %q", user.Phone)
	}
	if user.Name != "用户1234" {
		t.Fatalf("name = %q, want 用户1234", user.Name)
	}
	if _, err := time.Parse("2006-01-02 15:04:05", user.CreatedAt); err != nil {
		t.Fatalf("created_at %q not in YYYY-MM-DD HH:MM:SS form: %v", user.CreatedAt, err)
	}

	// the consumed code is gone
	if _, ok := codes.Get("13800001234"); ok {
		t.Fatal("code should be consumed by successful registration")
	}

	// same phone again, fresh code, still rejected
	codes.Set("13800001234", "654321")
	w, env = do(t, r, http.MethodPost, "/api/register", gin.H{
		"phone":    "13800001234",
		"password": "secret1",
		"code":     "654321",
	})
	if w.Code != 400 || env.Message != "该手机号已被注册" {
		t.Fatalf("duplicate register: status %d, message %q", w.Code, env.Message)
	}
}

func TestRegisterValidation(t *testing.T) {
	r, codes := newTestAPI(t)
	codes.Set("13800001234", "123456")

	cases := []struct {
		name    string
		body    gin.H
		status  int
		message string
	}{
		{"missing fields", gin.H{"phone": "13800001234"}, 400, "参数不完整"},
		{"bad phone", gin.H{"phone": "12345678901", "password": "secret1", "code": "123456"}, 400, "手机号格式不正确"},
		{"weak password", gin.H{"phone": "13800001234", "password": "12345", "code": "123456"}, 400, "密码长度不能少于6位"},
		{"wrong code", gin.H{"phone": "13800001234", "password": "secret1", "code": "000000"}, 400, "验证码错误"},
		{"no pending code", gin.H{"phone": "15912340000", "password": "secret1", "code": "123456"}, 400, "验证码错误"},
	}

	for _, tc := range cases {
		w, env := do(t, r, http.MethodPost, "/api/register", tc.body)
		if w.Code != tc.status || env.Message != tc.message {
			t.Errorf("%s: status %d message %q, want %d %q",
				tc.name, w.Code, env.Message, tc.status, tc.message)
		}
	}

	// a rejected attempt does not burn the pending code
	if _, ok := codes.Get("13800001234"); !ok {
		t.Fatal("code should survive failed registrations")
	}
}

func TestSendCodeRejectsBadPhone(t *testing.T) {
	r, codes := newTestAPI(t)

	w, env := do(t, r, http.MethodPost, "/api/send_code", gin.H{"phone": "12345678901"})
	if w.Code != 400 || env.Message != "手机号格式不正确" {
		t.Fatalf("status %d, message %q", w.Code, env.Message)
	}
	if _, ok := codes.Get("12345678901"); ok {
		t.Fatal("no code should be stored for a rejected phone")
	}
}

func TestSendCodeOverwritesPending(t *testing.T) {
	r, codes := newTestAPI(t)

	codes.Set("13800001234", "old-code")
	do(t, r, http.MethodPost, "/api/send_code", gin.H{"phone": "13800001234"})

	code, ok := codes.Get("13800001234")
	if !ok || code == "old-code" {
		t.Fatalf("pending code not replaced: (%q, %v)", code, ok)
	}
}

func TestLoginDoesNotRevealWhichFieldFailed(t *testing.T) {
	r, codes := newTestAPI(t)
	registerUser(t, r, codes, "13800001234", "secret1")

	wUnknown, envUnknown := do(t, r, http.MethodPost, "/api/login", gin.H{
		"phone":    "15912340000",
		"password": "secret1",
	})
	wWrong, envWrong := do(t, r, http.MethodPost, "/api/login", gin.H{
		"phone":    "13800001234",
		"password": "wrong-pass",
	})

	if wUnknown.Code != 401 || wWrong.Code != 401 {
		t.Fatalf("statuses %d/%d, want 401/401", wUnknown.Code, wWrong.Code)
	}
	if envUnknown.Message != envWrong.Message || envUnknown.Code != envWrong.Code {
		t.Fatalf("failure envelopes differ: %+v vs %+v", envUnknown, envWrong)
	}

	w, env := do(t, r, http.MethodPost, "/api/login", gin.H{
		"phone":    "13800001234",
		"password": "secret1",
	})
	if w.Code != 200 || env.Message != "登录成功" {
		t.Fatalf("login: status %d, message %q", w.Code, env.Message)
	}
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := newTestAPI(t)

	w, env := do(t, r, http.MethodPost, "/api/login", gin.H{"phone": "13800001234"})
	if w.Code != 400 || env.Message != "参数不完整" {
		t.Fatalf("status %d, message %q", w.Code, env.Message)
	}
}

func TestUserInfo(t *testing.T) {
	r, codes := newTestAPI(t)
	id := registerUser(t, r, codes, "13800001234", "secret1")

	w, env := do(t, r, http.MethodGet, "/api/user_info", nil)
	if w.Code != 400 || env.Message != "用户ID不能为空" {
		t.Fatalf("missing id: status %d, message %q", w.Code, env.Message)
	}

	w, env = do(t, r, http.MethodGet, "/api/user_info?user_id=9999", nil)
	if w.Code != 404 || env.Message != "用户不存在" {
		t.Fatalf("unknown id: status %d, message %q", w.Code, env.Message)
	}

	w, env = do(t, r, http.MethodGet, "/api/user_info?user_id=1", nil)
	if w.Code != 200 {
		t.Fatalf("status %d, message %q", w.Code, env.Message)
	}
	var user struct {
		ID    uint   `json:"id"`
		Phone string `json:"phone"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.ID != id || user.Phone != "13800001234" {
		t.Fatalf("got id %d phone %q", user.ID, user.Phone)
	}
}

// ======================================================
// BOOKINGS
// ======================================================

type bookingDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	NeedType    string `json:"need_type"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func createBooking(t *testing.T, r http.Handler, userID uint) bookingDTO {
	t.Helper()

	w, env := do(t, r, http.MethodPost, "/api/booking/create", gin.H{
		"user_id":     userID,
		"name":        "张三",
		"phone":       "13800001234",
		"company":     "某某科技",
		"need_type":   "技术咨询",
		"description": "需要一次架构评审",
	})
	if w.Code != 200 {
		t.Fatalf("create booking: status %d, message %q", w.Code, env.Message)
	}

	var b bookingDTO
	if err := json.Unmarshal(env.Data, &b); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	return b
}

func TestBookingCreateAndDetailRoundTrip(t *testing.T) {
	r, codes := newTestAPI(t)
	userID := registerUser(t, r, codes, "13800001234", "secret1")

	created := createBooking(t, r, userID)
	if created.Status != "pending" {
		t.Fatalf("new booking status = %q, want pending", created.Status)
	}

	w, env := do(t, r, http.MethodGet, "/api/booking/detail?booking_id=1", nil)
	if w.Code != 200 {
		t.Fatalf("detail: status %d, message %q", w.Code, env.Message)
	}

	var got bookingDTO
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if got != created {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got, created)
	}
}

func TestBookingCreateValidation(t *testing.T) {
	r, codes := newTestAPI(t)
	registerUser(t, r, codes, "13800001234", "secret1")

	w, env := do(t, r, http.MethodPost, "/api/booking/create", gin.H{
		"user_id": 1,
		"name":    "张三",
		// company, need_type, description, phone missing
	})
	if w.Code != 400 || env.Message != "参数不完整" {
		t.Fatalf("missing fields: status %d, message %q", w.Code, env.Message)
	}

	w, env = do(t, r, http.MethodPost, "/api/booking/create", gin.H{
		"user_id":     9999,
		"name":        "张三",
		"phone":       "13800001234",
		"company":     "某某科技",
		"need_type":   "技术咨询",
		"description": "需要一次架构评审",
	})
	if w.Code != 404 || env.Message != "用户不存在" {
		t.Fatalf("unknown user: status %d, message %q", w.Code, env.Message)
	}
}

func TestBookingList(t *testing.T) {
	r, codes := newTestAPI(t)
	userID := registerUser(t, r, codes, "13800001234", "secret1")

	w, env := do(t, r, http.MethodGet, "/api/booking/list", nil)
	if w.Code != 400 || env.Message != "用户ID不能为空" {
		t.Fatalf("missing id: status %d, message %q", w.Code, env.Message)
	}

	w, env = do(t, r, http.MethodGet, "/api/booking/list?user_id=9999", nil)
	if w.Code != 404 || env.Message != "用户不存在" {
		t.Fatalf("unknown user: status %d, message %q", w.Code, env.Message)
	}

	// no bookings yet → empty list, not an error
	w, env = do(t, r, http.MethodGet, "/api/booking/list?user_id=1", nil)
	if w.Code != 200 {
		t.Fatalf("empty list: status %d, message %q", w.Code, env.Message)
	}
	var list []bookingDTO
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("got %d bookings, want 0", len(list))
	}

	createBooking(t, r, userID)
	createBooking(t, r, userID)

	_, env = do(t, r, http.MethodGet, "/api/booking/list?user_id=1", nil)
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d bookings, want 2", len(list))
	}
	// equal timestamps fall back to id order, newest insert first
	if list[0].ID < list[1].ID {
		t.Fatalf("list not newest-first: ids %d, %d", list[0].ID, list[1].ID)
	}
}

func TestBookingCancel(t *testing.T) {
	r, codes := newTestAPI(t)
	ownerID := registerUser(t, r, codes, "13800001234", "secret1")
	otherID := registerUser(t, r, codes, "15912340000", "secret1")

	created := createBooking(t, r, ownerID)

	w, env := do(t, r, http.MethodPost, "/api/booking/cancel", gin.H{
		"booking_id": created.ID,
	})
	if w.Code != 400 || env.Message != "参数不完整" {
		t.Fatalf("missing user_id: status %d, message %q", w.Code, env.Message)
	}

	w, env = do(t, r, http.MethodPost, "/api/booking/cancel", gin.H{
		"booking_id": 9999,
		"user_id":    ownerID,
	})
	if w.Code != 404 || env.Message != "预约不存在" {
		t.Fatalf("unknown booking: status %d, message %q", w.Code, env.Message)
	}

	w, env = do(t, r, http.MethodPost, "/api/booking/cancel", gin.H{
		"booking_id": created.ID,
		"user_id":    otherID,
	})
	if w.Code != 403 || env.Message != "无权操作此预约" {
		t.Fatalf("foreign user: status %d, message %q", w.Code, env.Message)
	}

	w, env = do(t, r, http.MethodPost, "/api/booking/cancel", gin.H{
		"booking_id": created.ID,
		"user_id":    ownerID,
	})
	if w.Code != 200 || env.Message != "预约已取消" {
		t.Fatalf("cancel: status %d, message %q", w.Code, env.Message)
	}
	var b bookingDTO
	if err := json.Unmarshal(env.Data, &b); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if b.Status != "canceled" {
		t.Fatalf("status = %q, want canceled", b.Status)
	}

	// re-cancel is idempotent
	w, env = do(t, r, http.MethodPost, "/api/booking/cancel", gin.H{
		"booking_id": created.ID,
		"user_id":    ownerID,
	})
	if w.Code != 200 {
		t.Fatalf("re-cancel: status %d, message %q", w.Code, env.Message)
	}

	w, env = do(t, r, http.MethodGet, "/api/booking/detail?booking_id=1", nil)
	if w.Code != 200 {
		t.Fatalf("detail: status %d", w.Code)
	}
	if err := json.Unmarshal(env.Data, &b); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if b.Status != "canceled" {
		t.Fatalf("persisted status = %q, want canceled", b.Status)
	}
}
