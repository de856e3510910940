package helpers

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// BuildContactNotificationHTML site sahibine giden "yeni iletişim mesajı" e-postası.
func BuildContactNotificationHTML(name, email, message string, receivedAt time.Time) string {
	body := strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
	return fmt.Sprintf(`
<html>
  <body style="font-family:Arial,sans-serif;background:#f7f7f7;padding:0;margin:0;">
    <table width="100%%" bgcolor="#f7f7f7" cellpadding="0" cellspacing="0" style="padding:30px 0;">
      <tr>
        <td align="center">
          <table width="600" bgcolor="#fff" cellpadding="24" cellspacing="0" style="border-radius:10px;box-shadow:0 2px 8px #eee;">
            <tr>
              <td>
                <h2 style="color:#2d74da;margin-top:0;">Yeni iletişim mesajı</h2>
                <p style="font-size:14px;color:#555;margin:0 0 4px 0;"><b>Gönderen:</b> %s &lt;%s&gt;</p>
                <p style="font-size:14px;color:#555;margin:0 0 16px 0;"><b>Tarih:</b> %s</p>
                <p style="font-size:16px;color:#333;">%s</p>
                <hr style="border:none;border-top:1px solid #eee;margin:32px 0 12px 0;">
                <p style="font-size:12px;color:#999;margin:0;">
                  Bu e-posta PenLink iletişim formundan otomatik olarak gönderildi.
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, html.EscapeString(name), html.EscapeString(email), receivedAt.Format("02.01.2006 15:04"), body)
}
