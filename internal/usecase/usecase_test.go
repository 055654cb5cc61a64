package usecase

import (
	"path/filepath"
	"testing"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "deal.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.TicketModel{}, &models.ApplicationModel{}, &models.ReportModel{},
		&models.WalletModel{}, &models.PaymentModel{},
	))
	return db
}

func TestTicketLifecycle(t *testing.T) {
	uc := NewDefaultTicketUsecase(repository.NewDefaultTicketRepository(testDB(t)), nil)

	ticket := &domain.Ticket{
		UserID:     "client",
		ChannelID:  "chan-1",
		TicketName: "ticket-order-client-2026-08-30",
	}
	require.NoError(t, uc.CreateTicket(ticket))
	assert.Len(t, ticket.ID, 15)
	assert.Equal(t, domain.TicketCreated, ticket.Status)
	assert.False(t, ticket.CreatedAt.IsZero())

	byChannel, err := uc.GetTicketByChannelID("chan-1")
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, byChannel.ID)

	require.NoError(t, uc.AttachOrder(ticket.TicketName, &domain.Order{
		Service:  "Writing",
		Answers:  []domain.QA{{Question: "What type?", Answer: "article"}},
		Budget:   "50",
		Deadline: "friday",
	}))

	withOrder, err := uc.WaitOrder(ticket.TicketName)
	require.NoError(t, err)
	require.NotNil(t, withOrder.Order)
	assert.Equal(t, "Writing", withOrder.Order.Service)
	assert.Equal(t, "article", withOrder.Order.Answers[0].Answer)

	require.NoError(t, uc.SetTxHash(ticket.ID, "0xdeadbeef"))
	require.NoError(t, uc.ClaimTicket(ticket.ID, "freelancer-1"))
	claimed, err := uc.GetTicketByName(ticket.TicketName)
	require.NoError(t, err)
	assert.Equal(t, "freelancer-1", claimed.FreelancerID)
	assert.Equal(t, domain.TicketClaimed, claimed.Status)
	assert.Equal(t, "0xdeadbeef", claimed.TxHash)

	// closed tickets are deleted, not archived
	require.NoError(t, uc.CloseTicket(ticket.ID))
	_, err = uc.GetTicketByName(ticket.TicketName)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestCancelTicketDeletesRecord(t *testing.T) {
	uc := NewDefaultTicketUsecase(repository.NewDefaultTicketRepository(testDB(t)), nil)
	require.NoError(t, uc.CreateTicket(&domain.Ticket{UserID: "u", TicketName: "ticket-cancel-me"}))

	require.NoError(t, uc.CancelTicket("ticket-cancel-me"))
	_, err := uc.GetTicketByName("ticket-cancel-me")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestWaitOrderWithoutForm(t *testing.T) {
	uc := NewDefaultTicketUsecase(repository.NewDefaultTicketRepository(testDB(t)), nil)
	require.NoError(t, uc.CreateTicket(&domain.Ticket{UserID: "u", TicketName: "ticket-bare"}))

	_, err := uc.WaitOrder("ticket-bare")
	assert.ErrorIs(t, err, domain.ErrOrderNotAttached)

	_, err = uc.WaitOrder("ticket-missing")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestApplicationStatusFlow(t *testing.T) {
	uc := NewDefaultApplicationUsecase(repository.NewDefaultApplicationRepository(testDB(t)))

	app := &domain.FreelancerApplication{
		UserID:   "applicant",
		Username: "neo",
		Service:  "Web Development",
		Answers:  []string{"5 years", "go", "scaled a shop", "github", "20h", "$40/h"},
	}
	require.NoError(t, uc.SubmitApplication(app))
	assert.Len(t, app.ID, 15)
	assert.Equal(t, domain.ApplicationPending, app.Status)

	approved, err := uc.ApproveApplication(app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApproved, approved.Status)
	assert.Equal(t, app.Answers, approved.Answers)

	_, err = uc.RejectApplication("nope")
	assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
}

func TestReportSequentialIDs(t *testing.T) {
	uc := NewDefaultReportUsecase(repository.NewDefaultReportRepository(testDB(t)), nil)

	first := &domain.Report{ReporterID: "r1", Description: "scam"}
	require.NoError(t, uc.FileReport(first))
	assert.Equal(t, "REP-000001", first.ReportID)
	assert.Equal(t, domain.ReportOpen, first.Status)

	second := &domain.Report{
		ReporterID:      "r2",
		ReportedUserIDs: []string{"111", "222"},
		ProofLinks:      []string{"https://cdn.example/a.png"},
		Description:     "nonpayment",
	}
	require.NoError(t, uc.FileReport(second))
	assert.Equal(t, "REP-000002", second.ReportID)

	resolved, err := uc.SetReportStatus("REP-000002", domain.ReportResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportResolved, resolved.Status)
	assert.Equal(t, []string{"111", "222"}, resolved.ReportedUserIDs)
	assert.Equal(t, []string{"https://cdn.example/a.png"}, resolved.ProofLinks)

	_, err = uc.SetReportStatus("REP-999999", domain.ReportDismissed)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestExtractMentionedUsers(t *testing.T) {
	assert.Equal(t, []string{"111", "222"}, ExtractMentionedUsers("<@111> and <@!222> did it"))
	assert.Empty(t, ExtractMentionedUsers("john and mary"))
}

func TestWalletUpsertOverwrites(t *testing.T) {
	uc := NewDefaultWalletUsecase(repository.NewDefaultWalletRepository(testDB(t)))

	_, err := uc.GetAddress("client")
	assert.ErrorIs(t, err, domain.ErrWalletNotLinked)

	require.NoError(t, uc.LinkWallet("client", "0x1111111111111111111111111111111111111111"))
	require.NoError(t, uc.LinkWallet("client", "0x2222222222222222222222222222222222222222"))

	addr, err := uc.GetAddress("client")
	require.NoError(t, err)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", addr)
}

func TestLinkWalletRejectsInvalidAddress(t *testing.T) {
	uc := NewDefaultWalletUsecase(repository.NewDefaultWalletRepository(testDB(t)))

	err := uc.LinkWallet("client", "not-an-address")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = uc.GetAddress("client")
	assert.ErrorIs(t, err, domain.ErrWalletNotLinked)
}

func TestPaymentTransitions(t *testing.T) {
	uc := NewDefaultPaymentUsecase(repository.NewDefaultPaymentRepository(testDB(t)), nil)

	payment, err := uc.StartPayment("student")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, payment.Status)

	// release before approval is rejected
	_, err = uc.ReleasePayment(payment.ID, "admin")
	assert.Error(t, err)

	withProof, err := uc.SubmitProof("student", "sent 50 usd", "https://cdn.example/receipt.png")
	require.NoError(t, err)
	assert.Equal(t, "sent 50 usd", withProof.ProofText)
	assert.Equal(t, "https://cdn.example/receipt.png", withProof.ProofImage)

	approved, err := uc.ApprovePayment(payment.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentApproved, approved.Status)
	assert.Equal(t, "admin", approved.ApprovedBy)

	// double approval is rejected
	_, err = uc.ApprovePayment(payment.ID, "admin")
	assert.Error(t, err)

	released, err := uc.ReleasePayment(payment.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentReleased, released.Status)
	require.NotNil(t, released.ReleasedAt)

	// the approved payment is no longer a proof target
	_, err = uc.SubmitProof("student", "late proof", "")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}
