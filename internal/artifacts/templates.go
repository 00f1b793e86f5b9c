package artifacts

// Template text for the generated artifacts. The prose and the generated
// server/dashboard are product content carried through verbatim; only the
// substitution variables matter to the engine.

const readmeTemplate = `# IZA OS Ecosystem - Mobile Access

**Autonomous Venture Studio - $724M+ Ecosystem**

## 🚀 Quick Start (Mobile)

### Prerequisites
- Python 3.9+
- Git
- Mobile device with internet access

### Installation

` + "```bash" + `
# Clone the repository
git clone {{.remote_url}}
cd {{.repo_name}}

# Install dependencies
pip install -r requirements.txt

# Run mobile setup
chmod +x mobile_setup.sh
./mobile_setup.sh
` + "```" + `

### Mobile Access

The ecosystem is optimized for mobile access with the following features:

- **Mobile Dashboard**: {{.main_dashboard_url}} (Mobile Optimized)
- **API Endpoints**: {{.urls.api}}
- **Monitoring**: {{.urls.monitoring}}
- **Research**: {{.urls.research}}
- **GitHub Integration**: {{.urls.github}}

### Ecosystem Overview

- **Total Entities**: 730+
- **Business Value**: $724M+
- **Automation Level**: 95%
- **Revenue Potential**: $300M ARR
- **Mobile Optimized**: ✅

### Key Components

#### Core Systems
- **IZA OS Components**: 7 core components ($16.8M value)
- **Business Entities**: 382 businesses ($221.3M value)
- **Frontend Entities**: 26 mobile-optimized projects
- **Repository Entities**: 204 repositories ($15.4M value)

#### Integrations
- **MCP Servers**: Apple Notes, Obsidian, Jupyter
- **Research Processing**: 25 papers ($28M enhancement)
- **GitHub Integration**: 530 repositories across 5 accounts
- **Docker Containers**: 730 containers with port allocations

#### Mobile Features
- **Responsive Design**: All dashboards mobile-optimized
- **Touch-Friendly**: Mobile-first interface design
- **Offline Support**: Core functionality available offline
- **Push Notifications**: Real-time alerts and updates
- **Mobile API**: RESTful API optimized for mobile clients

### Quick Commands

` + "```bash" + `
# Start mobile-optimized server
python mobile_server.py

# Check system status
python check_status.py

# View mobile dashboard
open {{.main_dashboard_url}}

# Access mobile API
curl {{.urls.api}}status
` + "```" + `

### Mobile Dashboard Access

The mobile dashboard provides:

- **Real-time Monitoring**: System health and performance
- **Entity Management**: Manage all 730+ entities
- **Revenue Tracking**: Monitor $300M ARR potential
- **Research Insights**: Access processed research data
- **GitHub Integration**: Repository management
- **MCP Services**: Apple Notes, Obsidian, Jupyter access

### Support

For mobile access support:
- **Documentation**: See ` + "`docs/`" + ` directory
- **Mobile Guide**: See ` + "`mobile/`" + ` directory
- **API Reference**: See ` + "`api/`" + ` directory

### License

Autonomous Venture Studio - All Rights Reserved

---

**Mobile Access Enabled** ✅
**Ecosystem Value**: $724M+
**Automation Level**: 95%
**Mobile Optimized**: Yes
`

const requirementsTemplate = `# Mobile-Optimized Requirements
# Autonomous Venture Studio - Mobile Access

# Core Framework
flask==2.3.3
gunicorn==21.2.0

# Database & Caching
redis==4.6.0
sqlalchemy==2.0.21

# Task Queue
celery==5.3.1

# HTTP & API
requests==2.31.0
flask-cors==4.0.0
flask-restful==0.3.10

# Configuration
python-dotenv==1.0.0
pyyaml==6.0.1

# Monitoring & Logging
psutil==5.9.6
loguru==0.7.2

# Mobile Optimization
flask-compress==1.13
flask-caching==2.1.0

# Data Processing
pandas==2.1.1
numpy==1.24.3

# Security
cryptography==41.0.4
flask-jwt-extended==4.5.2

# Development
pytest==7.4.2
black==23.7.0
flake8==6.0.0

# Mobile-Specific
flask-mobile==0.1.0
user-agents==2.2.0
`

const setupScriptTemplate = `#!/bin/bash
# Mobile Setup Script for Autonomous Venture Studio
# IZA OS Ecosystem - Mobile Access

echo "🚀 Setting up mobile access for Autonomous Venture Studio..."
echo "============================================================"

# Check Python version
python_version=$(python3 --version 2>&1)
echo "Python version: $python_version"

# Install dependencies
echo "📦 Installing dependencies..."
pip install -r requirements.txt

# Set up environment
echo "🔧 Setting up environment..."
export FLASK_ENV=production
export MOBILE_OPTIMIZATION=true
export ECOSYSTEM_MODE=mobile

# Create necessary directories
echo "📁 Creating directories..."
mkdir -p logs
mkdir -p data
mkdir -p config
mkdir -p mobile/cache

# Set permissions
echo "🔐 Setting permissions..."
chmod +x scripts/*.py
chmod +x mobile/*.py

# Initialize mobile configuration
echo "⚙️ Initializing mobile configuration..."
python scripts/init_mobile_config.py

# Start mobile-optimized server
echo "🌐 Starting mobile-optimized server..."
echo "Mobile Dashboard: {{.main_dashboard_url}}"
echo "API Endpoints: {{.urls.api}}"
echo "Monitoring: {{.urls.monitoring}}"
echo "Research: {{.urls.research}}"
echo "GitHub: {{.urls.github}}"
echo ""
echo "✅ Mobile access setup complete!"
echo "📱 Open {{.main_dashboard_url}} in your mobile browser"
echo ""
echo "Press Ctrl+C to stop the server"

# Start the mobile server
python mobile_server.py
`

const serverStubTemplate = `#!/usr/bin/env python3
"""
Mobile Server for Autonomous Venture Studio
IZA OS Ecosystem - Mobile Access
"""

import os
import sys
from flask import Flask, render_template, jsonify, request
from flask_cors import CORS
from flask_compress import Compress
import json
from datetime import datetime

app = Flask(__name__)
CORS(app)
Compress(app)

# Mobile optimization
app.config['COMPRESS_MIMETYPES'] = [
    'text/html', 'text/css', 'text/xml', 'application/json',
    'application/javascript', 'text/javascript'
]

@app.route('/')
def mobile_dashboard():
    """Mobile-optimized dashboard."""
    return render_template('mobile_dashboard.html')

@app.route('/api/status')
def api_status():
    """API status endpoint."""
    return jsonify({
        'status': 'active',
        'mobile_optimized': True,
        'ecosystem_value': 724000000,
        'total_entities': 730,
        'automation_level': 95.0,
        'timestamp': datetime.now().isoformat()
    })

@app.route('/api/entities')
def api_entities():
    """Get all entities."""
    return jsonify({
        'business_entities': 382,
        'frontend_entities': 26,
        'repository_entities': 204,
        'mcp_servers': 5,
        'total': 730
    })

@app.route('/api/health')
def api_health():
    """Health check endpoint."""
    return jsonify({
        'health': 'excellent',
        'uptime': '100%',
        'mobile_ready': True
    })

if __name__ == '__main__':
    print("🌐 Starting Mobile Server for Autonomous Venture Studio")
    print("📱 Mobile Dashboard: {{.main_dashboard_url}}")
    print("🔗 API Endpoints: {{.urls.api}}")
    print("📊 Monitoring: {{.urls.monitoring}}")
    print("🔬 Research: {{.urls.research}}")
    print("📚 GitHub: {{.urls.github}}")
    print("")
    print("✅ Mobile access ready!")

    app.run(host='0.0.0.0', port={{.ports.dashboard}}, debug=False)
`

const dashboardHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>IZA OS Ecosystem - Mobile Dashboard</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            margin: 0;
            padding: 20px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            min-height: 100vh;
        }
        .container {
            max-width: 100%;
            margin: 0 auto;
        }
        .header {
            text-align: center;
            margin-bottom: 30px;
        }
        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(150px, 1fr));
            gap: 15px;
            margin-bottom: 30px;
        }
        .stat-card {
            background: rgba(255, 255, 255, 0.1);
            padding: 20px;
            border-radius: 10px;
            text-align: center;
            backdrop-filter: blur(10px);
        }
        .stat-value {
            font-size: 24px;
            font-weight: bold;
            margin-bottom: 5px;
        }
        .stat-label {
            font-size: 14px;
            opacity: 0.8;
        }
        .quick-actions {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(120px, 1fr));
            gap: 15px;
            margin-bottom: 30px;
        }
        .action-btn {
            background: rgba(255, 255, 255, 0.2);
            border: none;
            padding: 15px;
            border-radius: 10px;
            color: white;
            font-size: 14px;
            cursor: pointer;
            transition: background 0.3s;
        }
        .action-btn:hover {
            background: rgba(255, 255, 255, 0.3);
        }
        .status-indicator {
            display: inline-block;
            width: 10px;
            height: 10px;
            border-radius: 50%;
            margin-right: 8px;
        }
        .status-healthy { background: #4CAF50; }
        .status-warning { background: #FF9800; }
        .status-critical { background: #F44336; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🚀 IZA OS Ecosystem</h1>
            <p>Autonomous Venture Studio - Mobile Dashboard</p>
            <p><span class="status-indicator status-healthy"></span>System Status: Active</p>
        </div>

        <div class="stats-grid">
            <div class="stat-card">
                <div class="stat-value">$724M+</div>
                <div class="stat-label">Ecosystem Value</div>
            </div>
            <div class="stat-card">
                <div class="stat-value">730+</div>
                <div class="stat-label">Total Entities</div>
            </div>
            <div class="stat-card">
                <div class="stat-value">95%</div>
                <div class="stat-label">Automation</div>
            </div>
            <div class="stat-card">
                <div class="stat-value">$300M</div>
                <div class="stat-label">ARR Potential</div>
            </div>
        </div>

        <div class="quick-actions">
            <button class="action-btn" onclick="window.open('/api/status', '_blank')">📊 Status</button>
            <button class="action-btn" onclick="window.open('/api/entities', '_blank')">🏢 Entities</button>
            <button class="action-btn" onclick="window.open('/api/health', '_blank')">❤️ Health</button>
            <button class="action-btn" onclick="window.open('{{.urls.api}}', '_blank')">🔗 API</button>
            <button class="action-btn" onclick="window.open('{{.urls.monitoring}}', '_blank')">📈 Monitor</button>
            <button class="action-btn" onclick="window.open('{{.urls.research}}', '_blank')">🔬 Research</button>
            <button class="action-btn" onclick="window.open('{{.urls.github}}', '_blank')">📚 GitHub</button>
        </div>

        <div class="header">
            <h3>📱 Mobile Access Ready</h3>
            <p>All systems optimized for mobile access</p>
        </div>
    </div>

    <script>
        // Auto-refresh status every 30 seconds
        setInterval(async () => {
            try {
                const response = await fetch('/api/status');
                const data = await response.json();
                console.log('Status updated:', data);
            } catch (error) {
                console.error('Status check failed:', error);
            }
        }, 30000);
    </script>
</body>
</html>`

const mobileDocsTemplate = `# Mobile Setup Documentation

## Mobile Access Setup

This document provides instructions for setting up mobile access to the Autonomous Venture Studio ecosystem.

### Prerequisites

1. **Python 3.9+** installed
2. **Git** installed
3. **Mobile device** with internet access
4. **GitHub account** access

### Installation Steps

1. **Clone Repository**
   ` + "```bash" + `
   git clone {{.remote_url}}
   cd {{.repo_name}}
   ` + "```" + `

2. **Install Dependencies**
   ` + "```bash" + `
   pip install -r requirements.txt
   ` + "```" + `

3. **Run Mobile Setup**
   ` + "```bash" + `
   chmod +x mobile_setup.sh
   ./mobile_setup.sh
   ` + "```" + `

4. **Start Mobile Server**
   ` + "```bash" + `
   python mobile_server.py
   ` + "```" + `

### Mobile Access Points

- **Main Dashboard**: {{.main_dashboard_url}}
- **API Endpoints**: {{.urls.api}}
- **Monitoring**: {{.urls.monitoring}}
- **Research**: {{.urls.research}}
- **GitHub**: {{.urls.github}}

### Mobile Features

- Responsive design for all screen sizes
- Touch-friendly interface
- Offline functionality
- Push notifications
- Mobile-optimized API

### Troubleshooting

See ` + "`docs/troubleshooting.md`" + ` for common issues and solutions.

### Support

For mobile access support, contact the development team.
`

const instructionsTemplate = `# Mobile Access Setup Instructions

## Autonomous Venture Studio - IZA OS Ecosystem

### Quick Setup (Mobile)

1. **Clone Repository**
   ` + "```bash" + `
   git clone {{.remote_url}}
   cd {{.repo_name}}
   ` + "```" + `

2. **Install Dependencies**
   ` + "```bash" + `
   pip install -r requirements.txt
   ` + "```" + `

3. **Run Mobile Setup**
   ` + "```bash" + `
   chmod +x mobile_setup.sh
   ./mobile_setup.sh
   ` + "```" + `

4. **Access Mobile Dashboard**
   - Open {{.main_dashboard_url}} in your mobile browser
   - All features optimized for mobile access

### Mobile Access Points

- **Main Dashboard**: {{.main_dashboard_url}}
- **API Endpoints**: {{.urls.api}}
- **Monitoring**: {{.urls.monitoring}}
- **Research**: {{.urls.research}}
- **GitHub Integration**: {{.urls.github}}

### Mobile Features

✅ Responsive design for all screen sizes
✅ Touch-friendly interface
✅ Offline functionality
✅ Push notifications
✅ Mobile-optimized API
✅ Compressed data transfer
✅ Mobile caching

### Ecosystem Overview

- **Total Value**: $724M+
- **Entities**: 730+
- **Automation**: 95%
- **Revenue Potential**: $300M ARR
- **Mobile Ready**: ✅

### Support

For mobile access support, see ` + "`docs/mobile_setup.md`" + `

---
**Mobile Access Enabled** ✅
`
