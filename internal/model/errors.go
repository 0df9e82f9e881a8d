package model

import (
	"energy-retrofit/internal/curve"

	"github.com/pkg/errors"
)

// Error kinds. Callers test them with errors.Is; messages carry field detail.
var (
	ErrInvalidCurve          = curve.ErrInvalidCurve
	ErrInvalidMotorGroup     = errors.New("invalid motor group")
	ErrInvalidLightingConfig = errors.New("invalid lighting config")
	ErrInvalidSchedule       = errors.New("invalid operating schedule")
	ErrInvalidTariff         = errors.New("invalid tariff")
)
