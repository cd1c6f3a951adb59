package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
	"github.com/Yurisurdi/flats/internal/repository"
)

// unknownLabel replaces references whose target record was deleted.
const unknownLabel = "Desconhecido"

// Period kinds.
const (
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodCustom = "custom"
)

// Period selects the date window for commission summaries. Week and month
// are anchored at "now"; custom carries an explicit inclusive range.
type Period struct {
	Kind  string
	Start model.Date
	End   model.Date
}

// Range resolves the period to its inclusive date bounds. Week runs Monday
// through Sunday of the current calendar week.
func (p Period) Range(now time.Time) (model.Date, model.Date, error) {
	switch p.Kind {
	case PeriodWeek:
		today := model.DateOf(now)
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := today.AddDays(-(weekday - 1))
		return start, start.AddDays(6), nil
	case PeriodMonth:
		start := model.NewDate(now.Year(), now.Month(), 1)
		end := model.DateOf(time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC))
		return start, end, nil
	case PeriodCustom:
		if p.Start.IsZero() || p.End.IsZero() {
			return model.Date{}, model.Date{}, fmt.Errorf("%w: custom period needs start and end", errs.ErrValidation)
		}
		if p.End.Before(p.Start) {
			return model.Date{}, model.Date{}, fmt.Errorf("%w: period end before start", errs.ErrValidation)
		}
		return p.Start, p.End, nil
	default:
		return model.Date{}, model.Date{}, fmt.Errorf("%w: unknown period %q", errs.ErrValidation, p.Kind)
	}
}

func inRange(d, start, end model.Date) bool {
	return !d.Before(start) && !d.After(end)
}

// RateSource supplies the GBP->BRL conversion rate. fallback reports that
// the fixed approximation was substituted after a lookup failure.
type RateSource interface {
	Rate(ctx context.Context) (rate float64, fallback bool)
}

// DashboardStats is the aggregate card set on the dashboard.
type DashboardStats struct {
	ActiveBookings     int     `json:"reservasAtivas"`
	MonthRevenue       float64 `json:"receitaMes"`
	PaymentsReceived   int     `json:"pagamentosRecebidos"`
	Outstanding        float64 `json:"pagamentosPendentes"`
	OccupancyPercent   int     `json:"ocupacao"`
	OccupiedApartments int     `json:"apartamentosOcupados"`
	ApartmentCount     int     `json:"totalApartamentos"`
	ClientCount        int     `json:"totalClientes"`
	AgentCount         int     `json:"totalAgentes"`

	UpcomingCheckIns []BookingDigest `json:"proximosCheckins"`
	PendingPayments  []BookingDigest `json:"pagamentosPendentesLista"`
}

// BookingDigest is a booking row resolved for display, with placeholder
// labels standing in for dangling references.
type BookingDigest struct {
	ID             uuid.UUID  `json:"id"`
	ClientName     string     `json:"cliente"`
	ApartmentLabel string     `json:"apartamento"`
	CheckIn        model.Date `json:"checkIn"`
	CheckOut       model.Date `json:"checkOut"`
	Status         string     `json:"status"`
	Outstanding    float64    `json:"valorPendente"`
}

// CommissionSummary is the period roll-up for the payments screen.
type CommissionSummary struct {
	Period       string     `json:"periodo"`
	Start        model.Date `json:"inicio"`
	End          model.Date `json:"fim"`
	Total        float64    `json:"totalComissao"`
	TotalBRL     float64    `json:"totalComissaoBRL"`
	ExchangeRate float64    `json:"taxaCambio"`
	RateFallback bool       `json:"taxaAproximada"`
	BookingCount int        `json:"totalReservas"`
	Average      float64    `json:"mediaComissao"`

	ByApartment []ApartmentShare `json:"comissaoPorApartamento"`
	Bookings    []BookingDigest  `json:"reservas"`
}

// ApartmentShare is one chart segment: commissions grouped by apartment.
type ApartmentShare struct {
	Label   string  `json:"apartamento"`
	Total   float64 `json:"total"`
	Percent float64 `json:"percentual"`
}

// ReportService computes booking and commission aggregations for the
// dashboard and the payments summary.
type ReportService struct {
	bookings   repository.Bookings
	apartments repository.Apartments
	clients    repository.Clients
	agents     repository.Agents
	rates      RateSource
	now        func() time.Time
}

// NewReportService constructs a report service.
func NewReportService(
	bookings repository.Bookings,
	apartments repository.Apartments,
	clients repository.Clients,
	agents repository.Agents,
	rates RateSource,
) *ReportService {
	return &ReportService{
		bookings:   bookings,
		apartments: apartments,
		clients:    clients,
		agents:     agents,
		rates:      rates,
		now:        time.Now,
	}
}

// Dashboard computes the stat cards for one user's bookings against the
// shared apartment set.
func (s *ReportService) Dashboard(ctx context.Context, userID string) (*DashboardStats, error) {
	bookings, err := s.bookings.ListBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	apartments, err := s.apartments.ListApartments(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	agents, err := s.agents.ListAgents(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := model.DateOf(now)
	monthStart, monthEnd, _ := Period{Kind: PeriodMonth}.Range(now)

	stats := &DashboardStats{
		ApartmentCount:   len(apartments),
		ClientCount:      len(clients),
		AgentCount:       len(agents),
		UpcomingCheckIns: []BookingDigest{},
		PendingPayments:  []BookingDigest{},
	}

	clientNames := map[uuid.UUID]string{}
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	aptLabels := map[uuid.UUID]string{}
	for _, a := range apartments {
		aptLabels[a.ID] = a.Landlord + " - " + a.City
	}

	occupied := 0
	weekAhead := today.AddDays(7)
	for _, b := range bookings {
		if b.Status == model.BookingConfirmed {
			stats.ActiveBookings++
			if b.Covers(today) {
				occupied++
			}
			if !b.CheckIn.Before(today) && !b.CheckIn.After(weekAhead) {
				stats.UpcomingCheckIns = append(stats.UpcomingCheckIns, s.digest(b, clientNames, aptLabels))
			}
		}

		// Revenue counts paid parts of bookings whose check-in falls in the
		// current month; outstanding spans all bookings regardless of period.
		if inRange(b.CheckIn, monthStart, monthEnd) {
			if b.DepositPaid {
				stats.MonthRevenue += b.DepositAmount
				stats.PaymentsReceived++
			}
			if b.BalancePaid {
				stats.MonthRevenue += b.BalanceAmount
				stats.PaymentsReceived++
			}
		}
		if !b.DepositPaid {
			stats.Outstanding += b.DepositAmount
		}
		if !b.BalancePaid {
			stats.Outstanding += b.BalanceAmount
		}
		if !b.DepositPaid || !b.BalancePaid {
			stats.PendingPayments = append(stats.PendingPayments, s.digest(b, clientNames, aptLabels))
		}
	}

	stats.OccupiedApartments = occupied
	if len(apartments) > 0 {
		stats.OccupancyPercent = int(math.Round(float64(occupied) / float64(len(apartments)) * 100))
	}

	sort.Slice(stats.UpcomingCheckIns, func(i, j int) bool {
		return stats.UpcomingCheckIns[i].CheckIn.Before(stats.UpcomingCheckIns[j].CheckIn)
	})
	return stats, nil
}

func (s *ReportService) digest(b model.Booking, clientNames, aptLabels map[uuid.UUID]string) BookingDigest {
	d := BookingDigest{
		ID:             b.ID,
		ClientName:     clientNames[b.ClientID],
		ApartmentLabel: aptLabels[b.ApartmentID],
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		Status:         b.Status,
	}
	if d.ClientName == "" {
		d.ClientName = unknownLabel
	}
	if d.ApartmentLabel == "" {
		d.ApartmentLabel = unknownLabel
	}
	if !b.DepositPaid {
		d.Outstanding += b.DepositAmount
	}
	if !b.BalancePaid {
		d.Outstanding += b.BalanceAmount
	}
	return d
}

// maxChartSegments caps the per-apartment breakdown for the donut chart.
const maxChartSegments = 5

// Commissions rolls up commissions for the selected period. Only bookings
// with a paid deposit enter the arithmetic, whatever the period; filtering is
// strictly by check-in date.
func (s *ReportService) Commissions(ctx context.Context, userID string, p Period) (*CommissionSummary, error) {
	start, end, err := p.Range(s.now())
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	apartments, err := s.apartments.ListApartments(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	clientNames := map[uuid.UUID]string{}
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	aptLabels := map[uuid.UUID]string{}
	for _, a := range apartments {
		aptLabels[a.ID] = a.Landlord + " - " + a.City
	}

	sum := &CommissionSummary{
		Period:      p.Kind,
		Start:       start,
		End:         end,
		ByApartment: []ApartmentShare{},
		Bookings:    []BookingDigest{},
	}
	byApartment := map[string]float64{}

	for _, b := range bookings {
		if !b.DepositPaid {
			continue
		}
		if !inRange(b.CheckIn, start, end) {
			continue
		}
		sum.Total += b.Commission
		sum.BookingCount++
		sum.Bookings = append(sum.Bookings, s.digest(b, clientNames, aptLabels))

		label, ok := aptLabels[b.ApartmentID]
		if !ok {
			label = unknownLabel
		}
		byApartment[label] += b.Commission
	}

	if sum.BookingCount > 0 {
		sum.Average = sum.Total / float64(sum.BookingCount)
	}

	rate, fallback := s.rates.Rate(ctx)
	sum.ExchangeRate = rate
	sum.RateFallback = fallback
	sum.TotalBRL = sum.Total * rate

	for label, total := range byApartment {
		sum.ByApartment = append(sum.ByApartment, ApartmentShare{Label: label, Total: total})
	}
	sort.Slice(sum.ByApartment, func(i, j int) bool {
		if sum.ByApartment[i].Total != sum.ByApartment[j].Total {
			return sum.ByApartment[i].Total > sum.ByApartment[j].Total
		}
		return sum.ByApartment[i].Label < sum.ByApartment[j].Label
	})
	if len(sum.ByApartment) > maxChartSegments {
		sum.ByApartment = sum.ByApartment[:maxChartSegments]
	}
	var chartTotal float64
	for _, seg := range sum.ByApartment {
		chartTotal += seg.Total
	}
	if chartTotal > 0 {
		for i := range sum.ByApartment {
			sum.ByApartment[i].Percent = sum.ByApartment[i].Total / chartTotal * 100
		}
	}

	sort.Slice(sum.Bookings, func(i, j int) bool {
		return sum.Bookings[i].CheckIn.Before(sum.Bookings[j].CheckIn)
	})
	return sum, nil
}
