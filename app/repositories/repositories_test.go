package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"payhub/app/models/order"
	"payhub/app/models/payment"
	"payhub/pkg/database"
	"payhub/pkg/database/migrations"
	"payhub/pkg/identifier"
	"payhub/pkg/logger"
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "repotest")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	logger.InitLogger(filepath.Join(tmpDir, "logs.log"), 1, 1, 1, false, "single", "debug")

	// 共享缓存的内存库，保证连接池内的连接看到同一份数据
	database.Connect(sqlite.Open("file:repotest?mode=memory&cache=shared"), logger.NewGormLogger())
	if err := database.AutoMigrate(migrations.RegisterTables()); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func createTestOrder(t *testing.T, merchantID string) *order.Order {
	t.Helper()
	o := &order.Order{
		ID:         identifier.NewOrderID(),
		MerchantID: merchantID,
		Amount:     5000,
		Currency:   order.DefaultCurrency,
		Status:     string(order.StatusCreated),
	}
	if err := NewOrderRepository().Create(context.Background(), o); err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func createTestPayment(t *testing.T, o *order.Order) *payment.Payment {
	t.Helper()
	p := &payment.Payment{
		ID:         identifier.NewPaymentID(),
		OrderID:    o.ID,
		MerchantID: o.MerchantID,
		Amount:     o.Amount,
		Currency:   o.Currency,
		Method:     string(payment.MethodCard),
		Status:     string(payment.StatusProcessing),
		CardLast4:  "1111",
	}
	if err := NewPaymentRepository().Create(context.Background(), p); err != nil {
		t.Fatalf("create payment: %v", err)
	}
	return p
}

func TestOrderScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	o := createTestOrder(t, "merchant_a")

	// 归属商户可以读取
	got, err := repo.GetByIDScoped(ctx, o.ID, "merchant_a")
	if err != nil {
		t.Fatalf("scoped get: %v", err)
	}
	if got.ID != o.ID {
		t.Errorf("got order %s, want %s", got.ID, o.ID)
	}

	// 其他商户读取必须是 not found
	if _, err := repo.GetByIDScoped(ctx, o.ID, "merchant_b"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("cross-merchant get: err = %v, want ErrRecordNotFound", err)
	}

	// 公开入口不限定商户
	if _, err := repo.GetByID(ctx, o.ID); err != nil {
		t.Errorf("public get: %v", err)
	}
}

func TestPaymentScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository()
	o := createTestOrder(t, "merchant_a")
	p := createTestPayment(t, o)

	if _, err := repo.GetByIDScoped(ctx, p.ID, "merchant_b"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("cross-merchant get: err = %v, want ErrRecordNotFound", err)
	}

	got, err := repo.GetByIDScoped(ctx, p.ID, "merchant_a")
	if err != nil {
		t.Fatalf("scoped get: %v", err)
	}
	if got.Amount != o.Amount || got.Currency != o.Currency {
		t.Errorf("payment snapshot mismatch: %d %s", got.Amount, got.Currency)
	}
}

func TestSettleTerminalTransition(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository()
	o := createTestOrder(t, "merchant_a")
	p := createTestPayment(t, o)

	applied, err := repo.SettleTerminal(ctx, p.ID, payment.StatusSuccess, "", "")
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !applied {
		t.Fatal("first settle must apply")
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after settle: %v", err)
	}
	if got.Status != string(payment.StatusSuccess) {
		t.Errorf("status = %s, want success", got.Status)
	}
	if got.ErrorCode != "" || got.ErrorDescription != "" {
		t.Errorf("success settlement must not set error fields")
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("updated_at not refreshed")
	}
}

func TestSettleTerminalIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository()
	o := createTestOrder(t, "merchant_a")
	p := createTestPayment(t, o)

	if _, err := repo.SettleTerminal(ctx, p.ID, payment.StatusFailed, payment.ErrCodeCardDeclined, "declined"); err != nil {
		t.Fatalf("settle: %v", err)
	}

	// 重复触发：已是终态，必须是 no-op
	applied, err := repo.SettleTerminal(ctx, p.ID, payment.StatusSuccess, "", "")
	if err != nil {
		t.Fatalf("second settle: %v", err)
	}
	if applied {
		t.Fatal("second settle must not apply")
	}

	got, _ := repo.GetByID(ctx, p.ID)
	if got.Status != string(payment.StatusFailed) {
		t.Errorf("status = %s, want failed (first terminal state wins)", got.Status)
	}
	if got.ErrorCode != payment.ErrCodeCardDeclined {
		t.Errorf("error code = %s, want %s", got.ErrorCode, payment.ErrCodeCardDeclined)
	}
}

func TestSettleTerminalMissingPayment(t *testing.T) {
	applied, err := NewPaymentRepository().SettleTerminal(context.Background(), "pay_missing", payment.StatusSuccess, "", "")
	if err != nil {
		t.Fatalf("settle missing: %v", err)
	}
	if applied {
		t.Fatal("settle of missing payment must be a no-op")
	}
}
