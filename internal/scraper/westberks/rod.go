package westberks

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"BinDay/pkg/config"
)

// lookupTimeout bounds the element lookups inside the untimed steps so a
// vanished selector fails instead of polling forever. Expiry here is an
// Unknown, not a Browser timeout; only the three explicit waits carry those.
const lookupTimeout = 10 * time.Second

// rodDriver is the production driver: one launched Chromium, one stealth page.
type rodDriver struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	sel      config.Selectors
}

func newRodDriver(headless bool, sel config.Selectors) (*rodDriver, error) {
	l := launcher.New().
		Headless(headless).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage")

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := stealth.Page(browser)
	if err != nil {
		_ = browser.Close()
		l.Cleanup()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	return &rodDriver{launcher: l, browser: browser, page: page, sel: sel}, nil
}

func (d *rodDriver) navigate(url string, timeout time.Duration) error {
	page := d.page.Timeout(timeout)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

func (d *rodDriver) fillPostcode(postcode string) error {
	el, err := d.page.Timeout(lookupTimeout).Element(d.sel.PostcodeInput)
	if err != nil {
		return err
	}
	return el.Input(postcode)
}

func (d *rodDriver) submit() error {
	btn, err := d.page.Timeout(lookupTimeout).Element(d.sel.SearchButton)
	if err != nil {
		return err
	}
	return btn.Click(proto.InputMouseButtonLeft, 1)
}

// waitAddresses polls the address dropdown until it holds more than the
// placeholder option, i.e. real addresses arrived from the postcode lookup.
func (d *rodDriver) waitAddresses(timeout time.Duration) error {
	el, err := d.page.Timeout(timeout).Element(d.sel.AddressSelect)
	if err != nil {
		return err
	}
	return el.Wait(rod.Eval(`() => this.options.length > 1`))
}

func (d *rodDriver) selectAddress(value string) error {
	el, err := d.page.Timeout(lookupTimeout).Element(d.sel.AddressSelect)
	if err != nil {
		return err
	}
	return el.Select([]string{fmt.Sprintf(`[value=%q]`, value)}, true, rod.SelectorTypeCSSSector)
}

// waitResults blocks until at least one collection block is present inside
// the results container.
func (d *rodDriver) waitResults(timeout time.Duration) error {
	_, err := d.page.Timeout(timeout).Element(d.sel.Results + " " + d.sel.Block)
	return err
}

func (d *rodDriver) resultsHTML() (string, error) {
	el, err := d.page.Timeout(lookupTimeout).Element(d.sel.Results)
	if err != nil {
		return "", err
	}
	obj, err := el.Eval(`() => this.innerHTML`)
	if err != nil {
		return "", err
	}
	return obj.Value.Str(), nil
}

func (d *rodDriver) close() {
	if d.browser != nil {
		_ = d.browser.Close()
	}
	if d.launcher != nil {
		d.launcher.Cleanup()
	}
}
