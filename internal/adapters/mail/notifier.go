package mail

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/mahabubulhasibshawon/spt-portal/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const sendTimeout = 15 * time.Second

// Notifier renders transactional emails and sends them in the background.
// Delivery failures are logged and counted, never returned.
type Notifier struct {
	sender      Sender
	adminEmail  string
	frontendURL string
	logger      *zap.Logger
	timeout     time.Duration
	wg          sync.WaitGroup
}

func NewNotifier(sender Sender, adminEmail, frontendURL string, logger *zap.Logger) *Notifier {
	return &Notifier{
		sender:      sender,
		adminEmail:  adminEmail,
		frontendURL: frontendURL,
		logger:      logger,
		timeout:     sendTimeout,
	}
}

func (n *Notifier) AccountCreated(ctx context.Context, user *domain.User, confirmToken string) {
	data := userData(user)
	admin := data
	admin.Link = n.frontendURL + "/admin/confirm?confirmUser=" + user.ID.String() + "&token=" + url.QueryEscape(confirmToken)
	n.dispatchPair(ctx,
		envelope{tplWelcome, user.Email, data},
		envelope{tplAdminNewUser, n.adminEmail, admin},
	)
}

func (n *Notifier) UserConfirmed(ctx context.Context, user *domain.User, passwordToken string) {
	data := userData(user)
	data.Link = n.frontendURL + "/auth/set-password/" + url.PathEscape(passwordToken)
	n.dispatch(ctx, envelope{tplSetPassword, user.Email, data})
}

func (n *Notifier) PasswordResetRequested(ctx context.Context, user *domain.User, passwordToken string) {
	data := userData(user)
	data.Link = n.frontendURL + "/auth/reset-password/" + url.PathEscape(passwordToken)
	n.dispatch(ctx, envelope{tplResetPassword, user.Email, data})
}

func (n *Notifier) OrderPlaced(ctx context.Context, user *domain.User, order *domain.Order) {
	data := n.orderData(user, order)
	n.dispatchPair(ctx,
		envelope{tplOrderPlacedClient, user.Email, data},
		envelope{tplOrderPlacedAdmin, n.adminEmail, data},
	)
}

func (n *Notifier) OrderStatusChanged(ctx context.Context, user *domain.User, order *domain.Order) {
	var name string
	switch order.Status {
	case domain.StatusPending:
		name = tplOrderPending
	case domain.StatusSent:
		name = tplOrderSent
	case domain.StatusDelivered:
		name = tplOrderDelivered
	case domain.StatusCancelled:
		name = tplOrderCancelled
	default:
		return
	}
	n.dispatch(ctx, envelope{name, user.Email, n.orderData(user, order)})
}

// Wait blocks until in-flight sends finish or ctx is done.
func (n *Notifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type envelope struct {
	template string
	to       string
	data     templateData
}

func (n *Notifier) dispatch(ctx context.Context, env envelope) {
	n.background(ctx, func(ctx context.Context) {
		_ = n.send(ctx, env)
	})
}

// dispatchPair sends both messages concurrently. One failing does not stop
// the other.
func (n *Notifier) dispatchPair(ctx context.Context, a, b envelope) {
	n.background(ctx, func(ctx context.Context) {
		var g errgroup.Group
		g.Go(func() error { return n.send(ctx, a) })
		g.Go(func() error { return n.send(ctx, b) })
		_ = g.Wait()
	})
}

func (n *Notifier) background(ctx context.Context, fn func(ctx context.Context)) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()
		fn(ctx)
	}()
}

func (n *Notifier) send(ctx context.Context, env envelope) error {
	if env.to == "" {
		n.logger.Warn("email skipped, no recipient", zap.String("template", env.template))
		metrics.EmailsSent.WithLabelValues(env.template, "skipped").Inc()
		return nil
	}
	msg, err := render(env.template, env.data)
	if err != nil {
		n.logger.Error("render email", zap.String("template", env.template), zap.Error(err))
		metrics.EmailsSent.WithLabelValues(env.template, "error").Inc()
		return err
	}
	msg.To = []string{env.to}
	if err := n.sender.Send(ctx, msg); err != nil {
		n.logger.Error("send email",
			zap.String("template", env.template),
			zap.String("to", env.to),
			zap.Error(err),
		)
		metrics.EmailsSent.WithLabelValues(env.template, "error").Inc()
		return err
	}
	metrics.EmailsSent.WithLabelValues(env.template, "ok").Inc()
	return nil
}

func userData(u *domain.User) templateData {
	return templateData{
		Name:         u.Name,
		BusinessName: u.BusinessName,
		Email:        u.Email,
		Phone:        u.Phone,
		PersonalID:   u.PersonalID,
		BusinessID:   u.BusinessID,
		Country:      string(u.Country),
	}
}

func (n *Notifier) orderData(u *domain.User, o *domain.Order) templateData {
	data := userData(u)
	data.BusinessName = o.BusinessName
	data.BusinessID = o.BusinessID
	data.Reference = o.Reference
	data.Payment = o.Payment
	data.Subtotal = o.Subtotal.StringFixed(2)
	data.Discount = o.Discount
	data.Total = o.Total.StringFixed(2)
	data.TrackingNumber = o.TrackingNumber
	data.Shipper = o.Shipper
	if o.EstimatedDelivery != nil {
		data.EstimatedDelivery = o.EstimatedDelivery.Format("02-01-2006")
	}
	for _, it := range o.Items {
		data.Items = append(data.Items, itemLine{
			SKU:       it.SKU,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price.StringFixed(2),
			LineTotal: it.LineTotal.StringFixed(2),
		})
	}
	data.Link = n.frontendURL + "/orders?page=1&orderId=" + o.ID.String()
	return data
}
