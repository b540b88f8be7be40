package web

import (
	"html/template"
	"net/http"
)

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, nil); err != nil {
		s.log.Error().Err(err).Msg("render dashboard")
	}
}

var page = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Quantum Computing Tutor</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f8fafc; margin: 0; padding: 20px; }
.container { max-width: 1200px; margin: auto; }
.header { background: linear-gradient(135deg, #2563eb 0%, #7c3aed 100%); padding: 30px; border-radius: 20px; color: white; text-align: center; margin-bottom: 30px; box-shadow: 0 8px 32px rgba(37, 99, 235, 0.3); }
h1 { font-size: 2.5em; margin: 0; }
.dashboard { display: grid; grid-template-columns: 1fr 2.5fr; gap: 30px; }
.control-panel, .chat-container { background: white; padding: 25px; border-radius: 16px; box-shadow: 0 4px 20px rgba(0, 0, 0, 0.1); }
.btn { padding: 12px 20px; border: none; border-radius: 8px; cursor: pointer; font-weight: 600; transition: all 0.3s ease; width: 100%; }
.btn-primary { background: #2563eb; color: white; }
.chat-messages { height: 500px; overflow-y: auto; padding: 10px; border: 1px solid #e5e7eb; border-radius: 8px; margin-bottom: 1rem; }
.message { margin-bottom: 1rem; display: flex; flex-direction: column; }
.user-message { align-items: flex-end; }
.bot-message { align-items: flex-start; }
.message div { max-width: 80%; padding: 10px 15px; line-height: 1.5; }
.user-message div { background: #2563eb; color: white; border-radius: 18px 18px 4px 18px; }
.bot-message div { background: #f3f4f6; border-radius: 4px 18px 18px 18px; }
.chat-input-form { display: flex; gap: 10px; }
.chat-input { flex: 1; padding: 15px; border: 2px solid #e5e7eb; border-radius: 12px; }
@media (max-width: 900px) { .dashboard { grid-template-columns: 1fr; } }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>🚀 Quantum Computing Tutor</h1><p>Interactive AI-powered quantum learning</p></div>
  <div class="dashboard">
    <div class="control-panel">
      <h3>🎛️ Controls</h3>
      <button class="btn" style="background:#10b981; color:white;" onclick="clearChat()">🔄 Clear Chat</button>
      <div id="stats" style="margin-top:20px;">
        <h4>📊 Session Stats</h4>
        <p>Queries: <span id="stat-queries">0</span></p>
        <p>Duration: <span id="stat-duration">0m 0s</span></p>
        <p>Avg Response: <span id="stat-response">0.0s</span></p>
      </div>
    </div>
    <div class="chat-container">
      <div class="chat-messages" id="chatMessages">
        <div class="message bot-message"><div>Welcome! What quantum mystery can I unravel for you today?</div></div>
      </div>
      <form class="chat-input-form" onsubmit="sendMessage(event)">
        <input class="chat-input" id="messageInput" placeholder="Ask about quantum gates, superposition..." autocomplete="off">
        <button type="submit" class="btn btn-primary">Send</button>
      </form>
    </div>
  </div>
</div>
<script>
async function sendMessage(event) {
  event.preventDefault();
  const input = document.getElementById('messageInput');
  const message = input.value.trim();
  if (!message) return;

  const chatMessages = document.getElementById('chatMessages');
  chatMessages.innerHTML += '<div class="message user-message"><div>' + message + '</div></div>';
  input.value = '';
  chatMessages.scrollTop = chatMessages.scrollHeight;

  try {
    const response = await fetch('/chat', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ message })
    });
    const data = await response.json();
    const botResponse = data.success ? data.response : 'Error: ' + data.error;
    chatMessages.innerHTML += '<div class="message bot-message"><div>' + botResponse.replace(/\n/g, '<br>') + '</div></div>';
    if (data.stats) updateStats(data.stats);
  } catch (error) {
    chatMessages.innerHTML += '<div class="message bot-message"><div>Error: Could not connect to the server.</div></div>';
  }
  chatMessages.scrollTop = chatMessages.scrollHeight;
}
function updateStats(stats) {
  document.getElementById('stat-queries').textContent = stats.total_queries;
  document.getElementById('stat-duration').textContent = stats.duration;
  document.getElementById('stat-response').textContent = stats.avg_response_time + 's';
}
async function clearChat() {
  await fetch('/clear', { method: 'POST' });
  document.getElementById('chatMessages').innerHTML = '<div class="message bot-message"><div>Chat cleared. Ready for a new quantum journey!</div></div>';
  updateStats({total_queries: 0, duration: '0m 0s', avg_response_time: 0});
}
setInterval(async () => {
  try {
    const response = await fetch('/stats');
    if (response.ok) {
      const stats = await response.json();
      updateStats(stats);
    }
  } catch (e) { console.error('Stat update failed', e) }
}, 30000);
</script>
</body>
</html>
`))
