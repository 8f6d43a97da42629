package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/mediana/WHX-BookingService/internal/integrations/mailservice"
)

// sendTimeout max time for a single delivery attempt
const sendTimeout = 10 * time.Second

// MailClient интерфейс клиента сервиса рассылки
type MailClient interface {
	SendConfirmation(ctx context.Context, confirmation mailservice.Confirmation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service асинхронная очередь отправки подтверждений.
// Enqueue никогда не блокирует и не возвращает ошибок наружу: доставка письма
// best-effort, бронирование остается подтвержденным при любом исходе.
// Ошибки доставки только логируются.
type Service struct {
	client MailClient
	logger Logger

	queue chan mailservice.Confirmation
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewService создает сервис и запускает воркер доставки
func NewService(client MailClient, queueSize int, logger Logger) *Service {
	s := &Service{
		client: client,
		logger: logger,
		queue:  make(chan mailservice.Confirmation, queueSize),
	}

	s.wg.Add(1)
	go s.run()

	return s
}

// Enqueue ставит подтверждение в очередь отправки.
// Возвращает false, если очередь переполнена и подтверждение отброшено.
func (s *Service) Enqueue(confirmation mailservice.Confirmation) bool {
	select {
	case s.queue <- confirmation:
		return true
	default:
		s.logger.Warn("Notifier: queue full, dropping confirmation for booking_id=%s", confirmation.BookingID)
		return false
	}
}

// Close останавливает прием, дожидается доставки уже поставленных в очередь писем
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}

func (s *Service) run() {
	defer s.wg.Done()

	for confirmation := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := s.client.SendConfirmation(ctx, confirmation)
		cancel()

		if err != nil {
			s.logger.Error("Notifier: failed to send confirmation for booking_id=%s: %v",
				confirmation.BookingID, err)
			continue
		}

		s.logger.Info("Notifier: confirmation sent for booking_id=%s", confirmation.BookingID)
	}
}
