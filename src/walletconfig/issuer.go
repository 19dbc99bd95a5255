// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package walletconfig

import (
	"context"
	"strings"

	"github.com/H0llyW00dzZ/wallet-core/src/logger"
	"github.com/H0llyW00dzZ/wallet-core/src/prefs"
)

// Preference location of the user-selected credential issuer.
const (
	IssuerPrefsNamespace = "IssuerCrudPrefs"
	IssuerPrefsKey       = "selected_issuer"
)

// ResolveIssuerURL returns the issuer URL stored under [IssuerPrefsNamespace] /
// [IssuerPrefsKey], or defaultURL when nothing usable is stored.
//
// A nil store, an absent or blank value, and a store read error all fall back to
// defaultURL; a read error is logged to log when log is non-nil.
func ResolveIssuerURL(ctx context.Context, store prefs.Store, defaultURL string, log logger.Logger) string {
	if store == nil {
		return defaultURL
	}

	v, ok, err := store.Get(ctx, IssuerPrefsNamespace, IssuerPrefsKey)
	if err != nil {
		if log != nil {
			log.Printf("walletconfig: issuer preference unreadable, using default %s: %v", defaultURL, err)
		}
		return defaultURL
	}
	if !ok || strings.TrimSpace(v) == "" {
		return defaultURL
	}
	return v
}
