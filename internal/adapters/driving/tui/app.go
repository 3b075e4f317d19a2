package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/components/header"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/views/article"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/views/category"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/views/contact"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/views/home"
	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui/views/privacy"
	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/core/ports/driving"
	"github.com/custodia-labs/newsroom/internal/logger"
	"github.com/custodia-labs/newsroom/internal/richtext"
)

// LoadingMessage is shown in the body while the collection is fetched.
const LoadingMessage = "Loading news..."

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is cancelled when the app quits; late fetch results are dropped.
	ctx    context.Context
	cancel context.CancelFunc

	styles   *styles.Styles
	keymap   *keymap.KeyMap
	siteName string

	header  *header.Header
	footer  *status.Bar
	body    viewport.Model
	spinner spinner.Model

	homeView     *home.View
	categoryView *category.View
	articleView  *article.View
	contactView  *contact.View
	privacyView  *privacy.View

	// load mirrors the collection state the body was last built from.
	load       domain.LoadState
	articles   []domain.Article
	categories []string

	// err holds the last fetch error.
	err error

	// scrollResets counts how often the body was scrolled back to the top
	// because the view changed.
	scrollResets int

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingArticleService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	memo, err := richtext.NewMemo(richtext.DefaultMemoSize, s.RichText())
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	siteName := domain.DefaultAppSettings().UI.SiteName
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err != nil {
			logger.Warn("tui: reading settings: %v", err)
		} else if settings.UI.SiteName != "" {
			siteName = settings.UI.SiteName
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		ports:        ports,
		ctx:          ctx,
		cancel:       cancel,
		styles:       s,
		keymap:       km,
		siteName:     siteName,
		header:       header.New(s, siteName),
		footer:       status.NewBar(s, km),
		body:         viewport.New(80, 20),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.Section)),
		homeView:     home.NewView(s),
		categoryView: category.NewView(s),
		articleView:  article.NewView(s, memo),
		contactView:  contact.NewView(s),
		privacyView:  privacy.NewView(s),
		load:         ports.Articles.State(),
		width:        80,
		height:       24,
	}

	// A synchronous source is ready before the first frame.
	if a.load.Status == domain.LoadReady {
		a.applyLoaded(collect(ctx, ports.Articles, a.load))
	}
	a.footer.SetLoadState(a.load)

	ports.Navigator.OnChange(a.onViewChange)

	return a, nil
}

// Init implements tea.Model.
// It mounts the initial view and starts the fetch when the source is remote.
func (a *App) Init() tea.Cmd {
	a.ports.Navigator.Mount()

	cmds := []tea.Cmd{tea.SetWindowTitle(a.siteName)}
	if a.load.Status == domain.LoadLoading {
		cmds = append(cmds, a.spinner.Tick, a.fetchArticles())
	}
	if _, ok := a.ports.Navigator.Current().(domain.ContactView); ok {
		cmds = append(cmds, a.contactView.Activate())
		a.refreshBody()
	}
	return tea.Batch(cmds...)
}

// fetchArticles returns a command that performs the one-shot fetch.
func (a *App) fetchArticles() tea.Cmd {
	ctx := a.ctx
	svc := a.ports.Articles
	return func() tea.Msg {
		state, err := svc.Load(ctx)
		if err != nil || state.Status != domain.LoadReady {
			return messages.ArticlesLoaded{State: state, Err: err}
		}
		return collect(ctx, svc, state)
	}
}

// collect reads the settled collection from the article service.
func collect(ctx context.Context, svc driving.ArticleService, state domain.LoadState) messages.ArticlesLoaded {
	articles, err := svc.List(ctx)
	if err != nil {
		return messages.ArticlesLoaded{State: domain.Failed(), Err: err}
	}
	categories, err := svc.Categories(ctx)
	if err != nil {
		return messages.ArticlesLoaded{State: domain.Failed(), Err: err}
	}
	return messages.ArticlesLoaded{State: state, Articles: articles, Categories: categories}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case spinner.TickMsg:
		if a.load.Status != domain.LoadLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.refreshBody()
		return a, cmd

	case messages.ArticlesLoaded:
		// The app was torn down while the fetch was in flight.
		if a.ctx.Err() != nil {
			return a, nil
		}
		a.applyLoaded(msg)
		a.refreshBody()
		return a, nil

	case messages.Navigate:
		cmd := a.navigate(msg.View)
		return a, cmd

	case messages.ContactSubmitted:
		logger.Debug("tui: contact message from %s acknowledged", msg.Email)
		a.footer.SetMessage("Message received. Thank you!")
		a.refreshBody()
		return a, nil

	case messages.Quit:
		return a, a.quit()
	}

	// Cursor blink and similar ticks belong to the contact form.
	if _, ok := a.ports.Navigator.Current().(domain.ContactView); ok {
		var cmd tea.Cmd
		a.contactView, cmd = a.contactView.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKey routes a key press. The contact form gets every key but ctrl+c
// while it has focus.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()
	if keymap.Matches(keyStr, a.keymap.ForceQuit) {
		return a.quit()
	}

	current := a.ports.Navigator.Current()
	if _, ok := current.(domain.ContactView); ok && a.contactView.Capturing() {
		var cmd tea.Cmd
		a.contactView, cmd = a.contactView.Update(msg)
		a.refreshBody()
		return cmd
	}

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a.quit()
	case keymap.Matches(keyStr, a.keymap.Home):
		return a.navigate(domain.HomeView{})
	case keymap.Matches(keyStr, a.keymap.Contact):
		return a.navigate(domain.ContactView{})
	case keymap.Matches(keyStr, a.keymap.Privacy):
		return a.navigate(domain.PrivacyView{})
	case keymap.Matches(keyStr, a.keymap.Category):
		if name, ok := a.header.CategoryAt(keymap.CategoryIndex(keyStr)); ok {
			return a.navigate(domain.CategoryView{Name: name})
		}
		return nil
	case keymap.Matches(keyStr, a.keymap.Back):
		return a.back(current)
	case keymap.Matches(keyStr, a.keymap.Top):
		a.body.GotoTop()
		return nil
	case keymap.Matches(keyStr, a.keymap.Bottom):
		a.body.GotoBottom()
		return nil
	case keymap.Matches(keyStr, a.keymap.PageUp), keymap.Matches(keyStr, a.keymap.PageDown):
		return a.scroll(msg)
	}

	if a.load.Status != domain.LoadReady {
		return nil
	}
	return a.updatePage(current, msg)
}

// updatePage forwards a key to the page being shown.
func (a *App) updatePage(current domain.ViewState, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch current.(type) {
	case domain.CategoryView:
		a.categoryView, cmd = a.categoryView.Update(msg)
	case domain.ArticleView:
		if keymap.Matches(msg.String(), a.keymap.Up) || keymap.Matches(msg.String(), a.keymap.Down) {
			return a.scroll(msg)
		}
		a.articleView, cmd = a.articleView.Update(msg)
	case domain.ContactView:
		a.contactView, cmd = a.contactView.Update(msg)
	case domain.PrivacyView:
		return a.scroll(msg)
	default:
		a.homeView, cmd = a.homeView.Update(msg)
	}
	a.refreshBody()
	return cmd
}

// scroll lets the viewport handle a scrolling key.
func (a *App) scroll(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	a.body, cmd = a.body.Update(msg)
	return cmd
}

// back leaves the current page: an article returns to its category,
// everything else returns home.
func (a *App) back(current domain.ViewState) tea.Cmd {
	switch current.(type) {
	case domain.HomeView:
		return nil
	case domain.ArticleView:
		if art := a.articleView.Article(); art != nil && art.Category != "" {
			return a.navigate(domain.CategoryView{Name: art.Category})
		}
	}
	return a.navigate(domain.HomeView{})
}

// navigate replaces the view. The observer registered in NewApp does the rest.
func (a *App) navigate(v domain.ViewState) tea.Cmd {
	a.footer.Clear()
	a.ports.Navigator.Navigate(v)
	if _, ok := v.(domain.ContactView); ok {
		cmd := a.contactView.Activate()
		a.refreshBody()
		return cmd
	}
	return nil
}

// onViewChange runs synchronously on every view change, the mount included,
// so the body is back at the top before the next frame.
// The new page paints at the origin even when its selection would not fit.
func (a *App) onViewChange(v domain.ViewState) {
	a.scrollResets++
	a.activate(v)
	a.renderBody()
	a.body.GotoTop()
}

// activate hands the new payload to its page.
func (a *App) activate(v domain.ViewState) {
	a.header.SetActive(v)
	switch v := v.(type) {
	case domain.CategoryView:
		a.categoryView.SetCategory(v.Name)
	case domain.ArticleView:
		a.articleView.SetArticleID(v.ID)
	}
	page := domain.PageOf(v)
	if page == domain.PageHome {
		a.homeView.Reset()
	}
	if page != domain.PageContact {
		a.contactView.Deactivate()
	}
}

func (a *App) applyLoaded(msg messages.ArticlesLoaded) {
	a.load = msg.State
	if a.load.Status == domain.LoadLoading {
		a.load = domain.Failed()
	}
	a.err = msg.Err
	a.articles = msg.Articles
	a.categories = msg.Categories

	a.header.SetCategories(a.categories)
	a.footer.SetLoadState(a.load)
	a.footer.SetArticleCount(len(a.articles))

	a.homeView.SetArticles(a.articles, a.categories)
	a.categoryView.SetArticles(a.articles)
	a.articleView.SetArticles(a.articles)
}

// refreshBody re-renders the body into the viewport and keeps the page's
// selection in sight.
func (a *App) refreshBody() {
	a.follow(a.renderBody())
}

// renderBody writes the current page into the viewport and returns the
// first line of its selection, or -1.
func (a *App) renderBody() int {
	sel := RenderPage(a.load, a.ports.Navigator.Current())

	var content string
	line := -1
	mode := status.ModeList
	switch sel.Kind {
	case SelectionLoading:
		content = a.spinner.View() + " " + a.styles.Muted.Render(LoadingMessage)
	case SelectionError:
		content = a.styles.Error.Render(sel.Message)
	case SelectionCategory:
		content = a.categoryView.View()
		line = a.categoryView.SelectedLine()
	case SelectionArticle:
		content = a.articleView.View()
		line = a.articleView.SelectedLine()
		mode = status.ModeReading
	case SelectionContact:
		content = a.contactView.View()
		if a.contactView.Capturing() {
			mode = status.ModeForm
		}
	case SelectionPrivacy:
		content = a.privacyView.View()
		mode = status.ModeReading
	default:
		content = a.homeView.View()
		line = a.homeView.SelectedLine()
	}

	a.footer.SetMode(mode)
	a.body.SetContent(content)
	return line
}

// follow scrolls just enough to show the item starting at line.
func (a *App) follow(line int) {
	if line < 0 {
		return
	}
	last := line + list.LinesPerItem - 2
	switch {
	case line < a.body.YOffset:
		a.body.SetYOffset(line)
	case last >= a.body.YOffset+a.body.Height:
		a.body.SetYOffset(last - a.body.Height + 1)
	}
}

func (a *App) quit() tea.Cmd {
	a.cancel()
	return tea.Quit
}

// View implements tea.Model.
// It renders the header, the body and the footer.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.header.View() + "\n" + a.body.View() + "\n" + a.footer.View()
}

// Run starts the TUI application.
func (a *App) Run(opts ...tea.ProgramOption) error {
	defer a.cancel()
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	p := tea.NewProgram(a, opts...)
	_, err := p.Run()
	return err
}

// Close cancels in-flight work. Results that arrive afterwards are ignored.
func (a *App) Close() {
	a.cancel()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	bodyHeight := height - header.Height - status.Height
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	a.header.SetWidth(width)
	a.footer.SetWidth(width)
	a.body.Width = width
	a.body.Height = bodyHeight

	a.homeView.SetDimensions(width, bodyHeight)
	a.categoryView.SetDimensions(width, bodyHeight)
	a.articleView.SetDimensions(width, bodyHeight)
	a.contactView.SetDimensions(width, bodyHeight)
	a.privacyView.SetDimensions(width, bodyHeight)
	a.refreshBody()
}

// CurrentView returns the view being shown.
func (a *App) CurrentView() domain.ViewState {
	return a.ports.Navigator.Current()
}

// LoadState returns the collection state the body reflects.
func (a *App) LoadState() domain.LoadState {
	return a.load
}

// Articles returns the loaded collection.
func (a *App) Articles() []domain.Article {
	return a.articles
}

// Categories returns the header categories.
func (a *App) Categories() []string {
	return a.categories
}

// ScrollResets returns how many times a view change reset the scroll position.
func (a *App) ScrollResets() int {
	return a.scrollResets
}

// ScrollOffset returns the body's vertical scroll position.
func (a *App) ScrollOffset() int {
	return a.body.YOffset
}

// Err returns the last fetch error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}
