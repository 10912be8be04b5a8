package middlewares

import (
	"net"
	"net/http"
	"patientdesk-service/internal/app/services/shared/ratelimiter"
	"patientdesk-service/internal/pkg/constvars"
	"patientdesk-service/internal/pkg/exceptions"
	"patientdesk-service/internal/pkg/utils"
	"strconv"
)

const mutationLimiterGroup = "record-mutation"

// MutationQuota caps create/update/delete traffic per caller address through
// the redis fixed-window limiter. Read traffic is covered by the per-second
// IP limiter on the router.
func (m *Middlewares) MutationQuota(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerAddr, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			callerAddr = r.RemoteAddr
		}

		out, err := m.ResourceLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      callerAddr,
			LimiterGroupName:  mutationLimiterGroup,
			WindowDurationSec: m.InternalConfig.App.MutationWindowDurationSec,
			MaxQuota:          m.InternalConfig.App.MutationQuotaPerWindow,
		})
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !out.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(out.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
