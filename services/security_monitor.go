package services

import (
	"log"
	"sync"
	"time"
)

const (
	throttleWindow    = 10 * time.Minute
	throttleThreshold = 20
	alertCooldown     = 1 * time.Hour
	maxAlerts         = 100
)

// SecurityEventMonitor aggregates abuse signals from the interaction routes
// and raises an alert when one client keeps hitting the rate limit
type SecurityEventMonitor struct {
	mu         sync.Mutex
	throttled  map[string][]time.Time // Map of IP -> rate-limited request timestamps
	alertedIPs map[string]time.Time   // Map of IP -> last alert time
	alerts     []SecurityAlert        // History of alerts, newest first
	now        func() time.Time
}

// SecurityAlert represents a triggered security alert
type SecurityAlert struct {
	Timestamp time.Time
	IP        string
	Reason    string
	Level     string // "WARNING", "CRITICAL"
}

// Global monitor instance
var Monitor *SecurityEventMonitor

// InitSecurityMonitor initializes the global monitor
func InitSecurityMonitor() {
	Monitor = NewSecurityMonitor(time.Now)
}

// NewSecurityMonitor creates a monitor reading time from now
func NewSecurityMonitor(now func() time.Time) *SecurityEventMonitor {
	return &SecurityEventMonitor{
		throttled:  make(map[string][]time.Time),
		alertedIPs: make(map[string]time.Time),
		alerts:     make([]SecurityAlert, 0),
		now:        now,
	}
}

// TrackThrottled records a rejected interaction and checks the alert threshold
func (m *SecurityEventMonitor) TrackThrottled(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	windowStart := now.Add(-throttleWindow)

	recent := m.throttled[ip][:0]
	for _, t := range m.throttled[ip] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}
	recent = append(recent, now)
	m.throttled[ip] = recent

	if len(recent) >= throttleThreshold {
		m.triggerAlertLocked(ip, "Sustained interaction flooding detected")
	}
}

// triggerAlertLocked logs an alert at most once per cooldown per IP - called from within lock
func (m *SecurityEventMonitor) triggerAlertLocked(ip, reason string) {
	now := m.now()
	if lastAlert, alerted := m.alertedIPs[ip]; alerted && now.Sub(lastAlert) < alertCooldown {
		return
	}
	m.alertedIPs[ip] = now

	alert := SecurityAlert{
		Timestamp: now,
		IP:        ip,
		Reason:    reason,
		Level:     "WARNING",
	}
	m.alerts = append([]SecurityAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[:maxAlerts]
	}

	log.Printf("[SECURITY ALERT] %s from IP: %s", reason, ip)
}

// GetRecentAlerts returns a copy of recent alerts
func (m *SecurityEventMonitor) GetRecentAlerts() []SecurityAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	alertsCopy := make([]SecurityAlert, len(m.alerts))
	copy(alertsCopy, m.alerts)
	return alertsCopy
}

// Prune removes stale per-IP data; the scheduler runs it hourly
func (m *SecurityEventMonitor) Prune() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for ip, attempts := range m.throttled {
		if len(attempts) == 0 || now.Sub(attempts[len(attempts)-1]) > throttleWindow {
			delete(m.throttled, ip)
		}
	}
	for ip, lastAlert := range m.alertedIPs {
		if now.Sub(lastAlert) > alertCooldown {
			delete(m.alertedIPs, ip)
		}
	}
}
