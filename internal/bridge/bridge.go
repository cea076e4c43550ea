// Package bridge defines the message-passing boundaries to the wallet
// shell's external collaborators: opening URLs outside the app, pushing the
// translated menu to the native menu host, and decoding inbound settings
// notifications. Transport mechanics live on the other side of these
// interfaces.
package bridge

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a URL outside the application.
type Opener interface {
	OpenExternal(url string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string) error

func (f OpenerFunc) OpenExternal(url string) error { return f(url) }

// SystemOpener hands URLs to the desktop's default handler.
func SystemOpener() Opener {
	return OpenerFunc(func(url string) error {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("open %s: %w", url, err)
		}
		return nil
	})
}

// MenuSink receives the serialized menu translation sub-tree whenever the
// language changes.
type MenuSink interface {
	UpdateMenu(payload []byte) error
}

// MenuSinkFunc adapts a function to the MenuSink interface.
type MenuSinkFunc func(payload []byte) error

func (f MenuSinkFunc) UpdateMenu(payload []byte) error { return f(payload) }

// EncodeMenu serializes a menu translation sub-tree for the native menu host.
func EncodeMenu(subtree map[string]any) ([]byte, error) {
	data, err := json.Marshal(subtree)
	if err != nil {
		return nil, fmt.Errorf("encode menu: %w", err)
	}
	return data, nil
}

// SettingsPayload is the inbound settings notification. Unknown fields are
// ignored; only the keys this subsystem reacts to are decoded.
type SettingsPayload struct {
	Lang     string `json:"lang"`
	Currency string `json:"currency"`
}

// DecodeSettings parses a serialized settings notification.
func DecodeSettings(data []byte) (SettingsPayload, error) {
	var p SettingsPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return SettingsPayload{}, fmt.Errorf("decode settings: %w", err)
	}
	return p, nil
}

// EncodeSettings serializes a settings notification; the config watcher uses
// it to feed the UI through the same channel an external host would.
func EncodeSettings(p SettingsPayload) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}
