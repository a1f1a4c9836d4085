package kyc

import "errors"

var ErrProfileNotFound = errors.New("KYC profile not found")
