package page

import "locshare/internal/models"

// View is what the controller renders into. Implementations must not call
// back into the controller.
type View interface {
	// SetText sets the text of the translatable element identified by key.
	SetText(key, text string)
	SetStatus(text string)
	SetSubmitEnabled(enabled bool)
	PlaceMarker(p models.LocationPoint)
	// SetLanguage receives a BCP 47 tag for the page's lang attribute.
	SetLanguage(tag string)
}

type nopView struct{}

func (nopView) SetText(string, string)           {}
func (nopView) SetStatus(string)                 {}
func (nopView) SetSubmitEnabled(bool)            {}
func (nopView) PlaceMarker(models.LocationPoint) {}
func (nopView) SetLanguage(string)               {}
